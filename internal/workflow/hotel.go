package workflow

import (
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

var hotelSteps = []step[domain.HotelStay]{
	{id: "pet", section: func(p *domain.HotelStay) section { return &p.Pet }},
	{id: "tutor", section: func(p *domain.HotelStay) section { return &p.Tutor }},
	{id: "health", section: func(p *domain.HotelStay) section { return &p.Health }},
	{id: "feeding", section: func(p *domain.HotelStay) section { return &p.Feeding }},
	{id: "stay", section: func(p *domain.HotelStay) section { return &p.Stay }},
	{id: "consent", section: func(p *domain.HotelStay) section { return &p.Consent }},
}

// hotelRequest turns the stay dates into an interval. Check-in and check-out
// times left blank default to defaultClock.
func hotelRequest(defaultClock time.Duration) func(*domain.HotelStay) (domain.BookingRequest, error) {
	return func(p *domain.HotelStay) (domain.BookingRequest, error) {
		stay, err := p.Stay.Interval(defaultClock)
		if err != nil {
			return domain.BookingRequest{}, err
		}
		return domain.BookingRequest{
			ServiceType: domain.ServiceHotel,
			Stay:        &stay,
			CustomerRef: p.Tutor.Phone,
			Payload:     *p,
		}, nil
	}
}
