package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	infraPostgres "frontdesk/infras/postgres"
	"frontdesk/internal/tabular"
	"frontdesk/internal/tabular/memory"
	storePostgres "frontdesk/internal/tabular/postgres"
	"frontdesk/internal/tabular/xlsx"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

// ProvideStore selects the tabular-store driver. The database is only dialed
// when the postgres driver is configured.
func ProvideStore(cfg *config.Config, ot otel.Otel) tabular.Store {
	switch cfg.Store.Driver {
	case constant.StoreDriverPostgres:
		return storePostgres.New(infraPostgres.New(cfg), ot)
	case constant.StoreDriverXlsx:
		return xlsx.New(cfg)
	case constant.StoreDriverMemory, "":
		log.Warn().Msg("No store driver configured, using the in-memory store; data will not survive a restart")

		return memory.New()
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("Unknown store driver")

		return nil
	}
}
