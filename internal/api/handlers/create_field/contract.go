package create_field

import (
	"context"

	createField "github.com/Long0701/PitchSpot-BookingService/internal/usecase/create_field"
)

type CreateFieldUseCase interface {
	Execute(ctx context.Context, req *createField.Request) (*createField.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
