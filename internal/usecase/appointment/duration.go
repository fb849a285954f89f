package appointment

import (
	"context"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
	"github.com/shadysnails/salon-scheduler/internal/models"
)

// resolveDuration computes the total appointment length in minutes from
// the current catalog state: service duration plus the add-on's extra
// duration when one is requested. Inactive records count as not found.
func resolveDuration(
	ctx context.Context,
	repo domain.Repository,
	serviceID uint,
	additionalID *uint,
) (int, *models.Service, *models.Additional, error) {

	service, err := repo.GetService(ctx, serviceID)
	if err != nil {
		return 0, nil, nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return 0, nil, nil, httperr.ErrBusiness("service_not_found")
	}

	total := service.DurationMin

	var additional *models.Additional
	if additionalID != nil {
		additional, err = repo.GetAdditional(ctx, *additionalID)
		if err != nil {
			return 0, nil, nil, httperr.ErrBusiness("additional_not_found")
		}
		if !additional.Active {
			return 0, nil, nil, httperr.ErrBusiness("additional_not_found")
		}
		total += additional.ExtraDurationMin
	}

	return total, service, additional, nil
}
