// import_business carga un exporte CSV de pedidos cerrados como registros de negocio.
// Cada fila pasa por el mismo validador que POST /business/create y se guarda en el
// almacén configurado (STORAGE_DRIVER). Los pedidos ya importados se omiten.
//
// Uso:
//
//	go run ./cmd/import_business -restaurant <id> [-encoding latin1] [-delimiter ';'] [-dry-run] exporte.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/BarApp-api/internal/application/usecase"
	"github.com/jhoicas/BarApp-api/internal/domain"
	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/authz"
	"github.com/jhoicas/BarApp-api/internal/infrastructure/storage"
	"github.com/jhoicas/BarApp-api/pkg/config"
	"github.com/jhoicas/BarApp-api/pkg/logger"
)

func main() {
	restaurantID := flag.String("restaurant", "", "restaurante dueño de los registros (obligatorio)")
	encoding := flag.String("encoding", "utf-8", "encoding del archivo: utf-8, latin1 o windows-1252")
	delimiter := flag.String("delimiter", ",", "separador de columnas")
	dryRun := flag.Bool("dry-run", false, "solo validar, no guardar")
	flag.Parse()

	if *restaurantID == "" || flag.NArg() != 1 || len([]rune(*delimiter)) != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_business -restaurant <id> [-encoding latin1] [-delimiter ';'] [-dry-run] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("import")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	src, err := sourceReader(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("encoding")
	}
	rows, err := readRows(src, []rune(*delimiter)[0], time.Local)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sink recordCreator = validateOnly{}
	if !*dryRun {
		st, err := storage.Open(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("almacenamiento")
		}
		defer st.Close()

		policy, err := authz.NewCasbinPolicy()
		if err != nil {
			log.Fatal().Err(err).Msg("política de acceso")
		}
		sink = useCaseSink{uc: usecase.NewBusinessUseCase(st.Store, access.NewGuard(policy))}
	}

	res := importRows(ctx, sink, access.SystemPrincipal(*restaurantID), rows, log)
	log.Info().
		Int("created", res.Created).
		Int("duplicated", res.Duplicated).
		Int("rejected", res.Rejected).
		Bool("dry_run", *dryRun).
		Msg("importación terminada")
	if res.Failed != nil {
		log.Fatal().Err(res.Failed).Msg("importación interrumpida")
	}
}

type recordCreator interface {
	CreateRecord(ctx context.Context, p access.Principal, d business.Draft) error
}

// useCaseSink guarda a través del mismo caso de uso que POST /business/create.
type useCaseSink struct {
	uc *usecase.BusinessUseCase
}

func (s useCaseSink) CreateRecord(ctx context.Context, p access.Principal, d business.Draft) error {
	_, err := s.uc.Create(ctx, p, d)
	return err
}

// validateOnly modo -dry-run: valida sin tocar el almacén.
type validateOnly struct{}

func (validateOnly) CreateRecord(_ context.Context, _ access.Principal, d business.Draft) error {
	_, err := business.Validate(d)
	return err
}

type importResult struct {
	Created, Duplicated, Rejected int
	Failed                        error // error de infraestructura que detuvo la carga
}

// importRows crea fila por fila. Rechazos y duplicados no detienen la carga; cualquier otro error sí.
func importRows(ctx context.Context, sink recordCreator, p access.Principal, rows []row, log *logger.Logger) importResult {
	var res importResult
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			res.Failed = err
			return res
		}
		if r.Err != nil {
			res.Rejected++
			log.Warn().Int("line", r.Line).Err(r.Err).Msg("fila con celdas inválidas")
			continue
		}
		err := sink.CreateRecord(ctx, p, r.Draft)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrDuplicate):
			res.Duplicated++
			log.Debug().Int("line", r.Line).Msg("pedido ya importado")
		case errors.Is(err, domain.ErrInvalidInput):
			res.Rejected++
			log.Warn().Int("line", r.Line).Err(err).Msg("fila rechazada")
		default:
			res.Failed = fmt.Errorf("línea %d: %w", r.Line, err)
			return res
		}
	}
	return res
}
