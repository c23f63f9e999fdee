// Package firebase adapta Firebase Authentication y Firebase Realtime Database
// (SDK Admin oficial) a los puertos de identidad y almacenamiento.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/jhoicas/caja-api/pkg/config"
)

// ErrNoCredentials no se encontró ningún origen de credenciales.
var ErrNoCredentials = errors.New("no se encontró el archivo de credenciales de Firebase")

// fallbackCredentialsPath segunda ubicación donde se buscan las credenciales.
var fallbackCredentialsPath = filepath.Join("storage", "app", "firebase_credentials.json")

// App crea los clientes de Auth y Database una sola vez, en el primer uso.
// Después de inicializado es inmutable y se comparte entre peticiones.
type App struct {
	cfg config.FirebaseConfig

	once sync.Once
	auth *auth.Client
	db   *db.Client
	err  error
}

// NewApp no abre conexiones; los clientes se crean en el primer uso.
func NewApp(cfg config.FirebaseConfig) *App {
	return &App{cfg: cfg}
}

// Warmup fuerza la inicialización para detectar credenciales inválidas al arrancar.
func (a *App) Warmup(ctx context.Context) error {
	_, _, err := a.clients(ctx)
	return err
}

func (a *App) clients(ctx context.Context) (*auth.Client, *db.Client, error) {
	a.once.Do(func() {
		a.auth, a.db, a.err = a.connect(ctx)
	})
	return a.auth, a.db, a.err
}

func (a *App) connect(ctx context.Context) (*auth.Client, *db.Client, error) {
	opt, err := CredentialsOption(a.cfg)
	if err != nil {
		return nil, nil, err
	}
	app, err := fb.NewApp(ctx, &fb.Config{
		DatabaseURL: a.cfg.DatabaseURL,
		ProjectID:   a.cfg.ProjectID,
	}, opt)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: inicializar app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("firebase: cliente auth: %w", err)
	}
	var dbClient *db.Client
	if a.cfg.DatabaseURL != "" {
		dbClient, err = app.Database(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("firebase: cliente database: %w", err)
		}
	}
	return authClient, dbClient, nil
}

// CredentialsOption resuelve las credenciales de la cuenta de servicio en este orden:
// CredentialsFile, storage/app/firebase_credentials.json y CredentialsJSON.
func CredentialsOption(cfg config.FirebaseConfig) (option.ClientOption, error) {
	for _, path := range []string{cfg.CredentialsFile, fallbackCredentialsPath} {
		if path == "" {
			continue
		}
		if st, err := os.Stat(path); err == nil && !st.IsDir() {
			return option.WithCredentialsFile(path), nil
		}
	}
	if cfg.CredentialsJSON != "" {
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), nil
	}
	return nil, ErrNoCredentials
}
