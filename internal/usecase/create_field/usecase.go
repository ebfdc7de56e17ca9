package create_field

import (
	"context"
	"fmt"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/internal/slots"
)

// UseCase registers new fields and seeds their rolling slot horizon
type UseCase struct {
	fieldRepo    FieldRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the field registration use case
func NewUseCase(fieldRepo FieldRepository, logger Logger) *UseCase {
	return &UseCase{
		fieldRepo:    fieldRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the field, generates its slot horizon from the pricing,
// and persists both together.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateField: owner=%d, name=%q, sport=%s", req.OwnerID, req.Name, req.SportType)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateField: validation failed: %v", err)
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.CurrencyVND
	}

	field := &domain.Field{
		Name:        req.Name,
		Description: req.Description,
		SportType:   req.SportType,
		Location:    req.Location,
		Pricing: domain.Pricing{
			HourlyRate: req.HourlyRate,
			Currency:   currency,
		},
		OwnerID:  req.OwnerID,
		IsActive: true,
	}

	// 2. Seed the slot horizon from the field's pricing
	opts := slots.FieldOptions(field.Pricing)
	opts.Today = uc.timeProvider.Now()
	slotSet := slots.Generate(opts)

	// 3. Persist the field and its slots together
	created, err := uc.fieldRepo.Create(ctx, field, slotSet)
	if err != nil {
		uc.logger.Error("CreateField: failed to create field for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to create field: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateField: successfully created field id=%d with %d slots", created.ID, len(slotSet))

	return fromDomain(created, len(slotSet)), nil
}
