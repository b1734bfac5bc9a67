package media

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/subscraper/pkg/config"
	"github.com/orgball2608/subscraper/pkg/logger"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Pool   *pgxpool.Pool `optional:"true"`
	DB     *sql.DB       `optional:"true"`
}

// NewRepository picks the ledger backend configured by STORAGE_DRIVER.
func NewRepository(p Params) (Repository, error) {
	switch p.Config.Storage.Driver {
	case "postgres":
		if p.Pool == nil {
			return nil, fmt.Errorf("%w: postgres pool not provided", ErrUnknownDriver)
		}
		return NewPgx(p.Pool, p.Logger), nil
	case "sqlite":
		if p.DB == nil {
			return nil, fmt.Errorf("%w: sqlite database not provided", ErrUnknownDriver)
		}
		return NewSqlite(p.DB, p.Logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, p.Config.Storage.Driver)
	}
}

var Module = fx.Module("media_repository",
	fx.Provide(NewRepository),
)
