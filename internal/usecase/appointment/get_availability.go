package appointment

import (
	"context"

	domain "github.com/shadysnails/salon-scheduler/internal/domain/appointment"
	"github.com/shadysnails/salon-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
	tpl  domain.WeekTemplate
}

func NewGetAvailability(repo domain.Repository, tpl domain.WeekTemplate) *GetAvailability {
	return &GetAvailability{repo: repo, tpl: tpl}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	res := &domain.AvailabilityResult{
		Date:         in.Date.Format("2006-01-02"),
		WorkerID:     in.WorkerID,
		ServiceID:    in.ServiceID,
		AdditionalID: in.AdditionalID,
		Slots:        []string{},
	}

	worker, err := uc.repo.GetWorker(ctx, in.WorkerID)
	if err != nil {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	if !worker.Active {
		return nil, httperr.ErrBusiness("worker_not_found")
	}

	blocked, err := uc.repo.GetBlockedDate(ctx, in.WorkerID, in.Date)
	if err != nil {
		return nil, err
	}

	row, err := uc.repo.GetScheduleForDay(ctx, in.WorkerID, domain.DayOfWeek(in.Date))
	if err != nil {
		return nil, err
	}

	sched, err := domain.ResolveDaySchedule(blocked, row, in.Date, uc.tpl)
	if err != nil {
		return nil, err
	}

	if sched.Blocked {
		res.Blocked = true
		res.BlockReason = sched.BlockReason
		return res, nil
	}
	if !sched.Working {
		return res, nil
	}

	duration, _, _, err := resolveDuration(ctx, uc.repo, in.ServiceID, in.AdditionalID)
	if err != nil {
		return nil, err
	}
	res.TotalMinutes = duration

	existing, err := uc.repo.ListDayAppointments(ctx, in.WorkerID, in.Date, 0)
	if err != nil {
		return nil, err
	}

	windows, err := appointmentWindows(existing)
	if err != nil {
		return nil, err
	}

	for _, slot := range domain.GenerateSlots(sched.Start, sched.End, domain.SlotInterval) {
		// A start equal to closing time would be a zero-width booking.
		if slot >= sched.End {
			continue
		}
		if domain.SlotFits(slot, duration, sched.End, sched.Break, windows) {
			res.Slots = append(res.Slots, domain.FormatClock(slot))
		}
	}

	return res, nil
}
