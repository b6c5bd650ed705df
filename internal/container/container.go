package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ghost-labs/ghost-auth/config"
	"github.com/ghost-labs/ghost-auth/internal/application"
	"github.com/ghost-labs/ghost-auth/internal/domain/repository"
	"github.com/ghost-labs/ghost-auth/internal/infrastructure/jsonstore"
	"github.com/ghost-labs/ghost-auth/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	jwtManager  *helpers.JWTManager
	fileStore   *jsonstore.Store
	service     *application.Service

	users    repository.UserRepository
	sessions repository.SessionRepository
	attempts repository.LoginAttemptRepository
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }

// SetStore records the file store when the "file" driver is active; it stays
// nil under postgres so diagnostics can tell the drivers apart.
func SetStore(s *jsonstore.Store) { fileStore = s }
func GetStore() *jsonstore.Store  { return fileStore }

func SetService(s *application.Service) { service = s }
func GetService() *application.Service  { return service }

func SetRepositories(u repository.UserRepository, s repository.SessionRepository, a repository.LoginAttemptRepository) {
	users = u
	sessions = s
	attempts = a
}
func GetUsers() repository.UserRepository            { return users }
func GetSessions() repository.SessionRepository      { return sessions }
func GetAttempts() repository.LoginAttemptRepository { return attempts }
