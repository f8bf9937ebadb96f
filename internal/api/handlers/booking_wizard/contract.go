package booking_wizard

import (
	"context"

	bookingWizard "github.com/nekositon/NS-StudioService/internal/usecase/booking_wizard"
)

type WizardUseCase interface {
	Start(ctx context.Context) (*bookingWizard.Response, error)
	Get(ctx context.Context, wizardID string) (*bookingWizard.Response, error)
	SubmitContact(ctx context.Context, wizardID string, req *bookingWizard.SubmitContactRequest) (*bookingWizard.Response, error)
	SubmitDetails(ctx context.Context, wizardID string, req *bookingWizard.SubmitDetailsRequest) (*bookingWizard.Response, error)
	AttachProof(ctx context.Context, wizardID string, req *bookingWizard.AttachProofRequest) (*bookingWizard.Response, error)
	RemoveProof(ctx context.Context, wizardID string) (*bookingWizard.Response, error)
	Back(ctx context.Context, wizardID string) (*bookingWizard.Response, error)
	Submit(ctx context.Context, wizardID string) (*bookingWizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
