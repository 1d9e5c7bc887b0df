package services

import (
	portsrepo "github.com/taxtrackng/taxtrack_backend/internal/core/ports/repositories"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/platform/config"
)

// NewServiceContainer wires every application service over the supplied
// repositories and recognition engine.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, recognizer portssvc.ReceiptRecognizer) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.TransactionRepo, cfg.CurrencySymbol)

	return &portssvc.ServiceContainer{
		User:               NewUserService(repos.UserRepo),
		Ledger:             ledgerSvc,
		Extraction:         NewExtractionService(recognizer, ledgerSvc),
		CSVImport:          NewCSVImportService(ledgerSvc),
		TokenService:       NewTokenService(cfg),
		GoogleOAuthHandler: NewGoogleOAuthService(cfg),
	}
}
