package workflow

import (
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

var daycareSteps = []step[domain.DaycareEnrollment]{
	{id: "pet", section: func(p *domain.DaycareEnrollment) section { return &p.Pet }},
	{id: "tutor", section: func(p *domain.DaycareEnrollment) section { return &p.Tutor }},
	{id: "health", section: func(p *domain.DaycareEnrollment) section { return &p.Health }},
	{id: "behavior", section: func(p *domain.DaycareEnrollment) section { return &p.Behavior }},
	{id: "plan", section: func(p *domain.DaycareEnrollment) section { return &p.Plan }},
}

// daycareRequest books the evaluation visit chosen in the plan step.
func daycareRequest(slotLength time.Duration) func(*domain.DaycareEnrollment) (domain.BookingRequest, error) {
	return func(p *domain.DaycareEnrollment) (domain.BookingRequest, error) {
		date, err := domain.ParseDate(p.Plan.VisitDate)
		if err != nil {
			return domain.BookingRequest{}, err
		}
		start, err := domain.ParseClock(p.Plan.VisitTime)
		if err != nil {
			return domain.BookingRequest{}, err
		}
		slot := domain.NewTimeSlot(date, start, slotLength)

		return domain.BookingRequest{
			ServiceType: domain.ServiceDaycare,
			Slot:        &slot,
			CustomerRef: p.Tutor.ContactPhone,
			Payload:     *p,
		}, nil
	}
}
