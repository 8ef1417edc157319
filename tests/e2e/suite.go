//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"classroom-reservation/cmd/bootstrap"
	"classroom-reservation/cmd/bootstrap/components"
	"classroom-reservation/internal/pkg/config"
	"classroom-reservation/tests/common/authtest"
	"classroom-reservation/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the whole application against a real database and a fake room verifier.
// Each subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Tokens *authtest.JWTHelper

	verifier *fakeVerifier
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbCfg := freshDatabase(t, postgresEndpoint(t))
	s.verifier = startFakeVerifier(t)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Verifier.Endpoint = s.verifier.endpoint()
	cfg.Cache.Enabled = false
	cfg.Storage.Enabled = false
	require.NoError(t, cfg.Validate())

	s.Router = startApp(t, pool, cfg)
	s.DB = pool
	s.Config = cfg
	s.Tokens = authtest.NewJWTHelper(cfg.JWT)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
	s.verifier.set(DefaultRecognizedRoom)
}

// SetRecognizedRoom changes what the fake verifier reads from the next photos.
func (s *SharedSuite) SetRecognizedRoom(room string) {
	s.verifier.set(room)
}

// startApp swaps the config and pool providers for test values and keeps the production graph otherwise.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("stop application: %v", err)
		}
	})
	return router
}
