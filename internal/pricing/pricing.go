// Package pricing computes the quoted total of a reservation. Prices are in
// whole reais.
package pricing

import (
	"fmt"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type weightPrice struct {
	bath     int
	grooming int
}

var groomingTable = map[domain.WeightClass]weightPrice{
	domain.WeightUpTo5:  {bath: 65, grooming: 130},
	domain.Weight10:     {bath: 75, grooming: 150},
	domain.Weight15:     {bath: 85, grooming: 170},
	domain.Weight20:     {bath: 95, grooming: 190},
	domain.Weight25:     {bath: 105, grooming: 210},
	domain.Weight30:     {bath: 115, grooming: 230},
	domain.WeightOver30: {bath: 150, grooming: 300},
}

type addon struct {
	price int
	// only, when set, restricts the addon to these weight classes.
	only []domain.WeightClass
	// except excludes these weight classes.
	except []domain.WeightClass
}

var addons = map[string]addon{
	"tosa_tesoura":   {price: 160, only: []domain.WeightClass{domain.WeightUpTo5}},
	"aparacao":       {price: 35},
	"hidratacao":     {price: 25, except: []domain.WeightClass{domain.WeightUpTo5}},
	"tosa_higienica": {price: 15},
	"botinhas":       {price: 25},
	"desembolo":      {price: 25},
	"patacure1":      {price: 10},
	"patacure2":      {price: 20},
	"tintura":        {price: 20},
}

var daycarePlans = map[domain.DaycarePlanType]int{
	domain.DaycarePlan2x: 200,
	domain.DaycarePlan3x: 280,
	domain.DaycarePlan4x: 350,
	domain.DaycarePlan5x: 400,
}

const HotelDailyRate = 80

var hotelExtras = struct {
	bath, transport, vet, training int
}{bath: 100, transport: 50, vet: 120, training: 80}

func contains(list []domain.WeightClass, w domain.WeightClass) bool {
	for _, v := range list {
		if v == w {
			return true
		}
	}
	return false
}

// CheckAddons rejects unknown addons and addons not offered for the weight class.
func CheckAddons(weight domain.WeightClass, names []string) error {
	for _, name := range names {
		a, ok := addons[name]
		if !ok {
			return fmt.Errorf("%w: unknown addon %q", domain.ErrAddonNotAllowed, name)
		}
		if (len(a.only) > 0 && !contains(a.only, weight)) || contains(a.except, weight) {
			return fmt.Errorf("%w: %s for weight %s", domain.ErrAddonNotAllowed, name, weight)
		}
	}
	return nil
}

// GroomingPrice sums the base price of the variant and the addons. A bath with
// grooming costs the bath plus the grooming-only price.
func GroomingPrice(d domain.GroomingDetails) (int, error) {
	row, ok := groomingTable[d.Weight]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weight class %q", domain.ErrValidation, d.Weight)
	}

	var total int
	switch d.Variant {
	case domain.GroomingBath:
		total = row.bath
	case domain.GroomingOnly:
		total = row.grooming
	case domain.GroomingBathAndGroom:
		total = row.bath + row.grooming
	default:
		return 0, fmt.Errorf("%w: unknown grooming variant %q", domain.ErrValidation, d.Variant)
	}

	if err := CheckAddons(d.Weight, d.Addons); err != nil {
		return 0, err
	}
	for _, name := range d.Addons {
		total += addons[name].price
	}
	return total, nil
}

func DaycarePlanPrice(plan domain.DaycarePlanType) (int, error) {
	price, ok := daycarePlans[plan]
	if !ok {
		return 0, fmt.Errorf("%w: unknown daycare plan %q", domain.ErrValidation, plan)
	}
	return price, nil
}

// HotelPrice charges the daily rate per night plus each extra once.
func HotelPrice(stay domain.StayInterval, extras domain.HotelExtras) int {
	total := stay.Nights() * HotelDailyRate
	if extras.Bath {
		total += hotelExtras.bath
	}
	if extras.Transport {
		total += hotelExtras.transport
	}
	if extras.Vet {
		total += hotelExtras.vet
	}
	if extras.Training {
		total += hotelExtras.training
	}
	return total
}

// Quote prices a booking request.
func Quote(req domain.BookingRequest) (int, error) {
	switch p := req.Payload.(type) {
	case domain.GroomingDetails:
		return GroomingPrice(p)
	case *domain.GroomingDetails:
		return GroomingPrice(*p)
	case domain.DaycareEnrollment:
		return DaycarePlanPrice(p.Plan.Plan)
	case *domain.DaycareEnrollment:
		return DaycarePlanPrice(p.Plan.Plan)
	case domain.HotelStay:
		return hotelQuote(req.Stay, p.Stay.Extras)
	case *domain.HotelStay:
		return hotelQuote(req.Stay, p.Stay.Extras)
	}
	return 0, fmt.Errorf("%w: no price list for %T", domain.ErrValidation, req.Payload)
}

func hotelQuote(stay *domain.StayInterval, extras domain.HotelExtras) (int, error) {
	if stay == nil {
		return 0, domain.MissingField("stay")
	}
	return HotelPrice(*stay, extras), nil
}
