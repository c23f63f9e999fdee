package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/caja-api/internal/domain/repository"
	"github.com/jhoicas/caja-api/internal/infrastructure/firebase"
	"github.com/jhoicas/caja-api/internal/infrastructure/localauth"
	"github.com/jhoicas/caja-api/internal/infrastructure/memory"
	"github.com/jhoicas/caja-api/internal/infrastructure/postgres"
	"github.com/jhoicas/caja-api/internal/infrastructure/rtdb"
	"github.com/jhoicas/caja-api/pkg/config"
	"github.com/jhoicas/caja-api/pkg/logger"
)

// backends proveedor de identidad y almacén seleccionados por AUTH_DRIVER y STORE_DRIVER.
type backends struct {
	Identity repository.IdentityProvider
	Store    rtdb.Store
	closers  []func()
}

func (b *backends) Close() {
	for _, fn := range b.closers {
		fn()
	}
}

func newBackends(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backends, error) {
	be := &backends{}

	var fb *firebase.App
	if cfg.Auth.Driver == config.DriverFirebase || cfg.Store.Driver == config.DriverFirebase {
		fb = firebase.NewApp(cfg.Firebase)
		// Un fallo aquí no detiene el arranque: cada operación vuelve a reportarlo.
		if err := fb.Warmup(ctx); err != nil {
			log.Warn().Err(err).Msg("firebase no disponible al arrancar")
		}
	}

	var accounts localauth.AccountStore
	switch cfg.Store.Driver {
	case config.DriverFirebase:
		be.Store = firebase.NewStore(fb)
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		be.closers = append(be.closers, pool.Close)
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			be.Close()
			return nil, fmt.Errorf("esquema PostgreSQL: %w", err)
		}
		be.Store = postgres.NewNodeStore(pool)
		accounts = postgres.NewAccountRepository(pool)
	case config.DriverMemory:
		be.Store = memory.NewStore()
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
	}

	switch cfg.Auth.Driver {
	case config.DriverFirebase:
		be.Identity = firebase.NewIdentity(fb)
	case config.DriverLocal:
		if accounts == nil {
			accounts = memory.NewAccounts()
		}
		be.Identity = localauth.New(accounts, localauth.Config{
			Secret:     cfg.JWT.Secret,
			Issuer:     cfg.JWT.Issuer,
			ExpMinutes: cfg.JWT.Expiration,
		})
	}
	return be, nil
}
