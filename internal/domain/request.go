package domain

import (
	"strings"
	"time"
)

// Payload is the service-specific part of a booking request.
type Payload interface {
	Service() ServiceType
	// MissingField returns the first required field left empty, or "".
	MissingField() string
}

type BookingRequest struct {
	ServiceType ServiceType
	Slot        *TimeSlot
	Stay        *StayInterval
	CustomerRef string
	Payload     Payload
}

type WeightClass string

const (
	WeightUpTo5  WeightClass = "up_to_5"
	Weight10     WeightClass = "kg_10"
	Weight15     WeightClass = "kg_15"
	Weight20     WeightClass = "kg_20"
	Weight25     WeightClass = "kg_25"
	Weight30     WeightClass = "kg_30"
	WeightOver30 WeightClass = "over_30"
)

type GroomingVariant string

const (
	GroomingBath         GroomingVariant = "bath"
	GroomingBathAndGroom GroomingVariant = "bath_and_grooming"
	GroomingOnly         GroomingVariant = "grooming_only"
)

// Duration is how long the variant keeps a grooming table busy, or zero for
// an unknown variant.
func (v GroomingVariant) Duration() time.Duration {
	switch v {
	case GroomingBath:
		return time.Hour
	case GroomingBathAndGroom, GroomingOnly:
		return 2 * time.Hour
	}
	return 0
}

type GroomingDetails struct {
	PetName      string          `json:"pet_name"`
	PetBreed     string          `json:"pet_breed"`
	OwnerName    string          `json:"owner_name"`
	OwnerAddress string          `json:"owner_address"`
	WhatsApp     string          `json:"whatsapp"`
	Weight       WeightClass     `json:"weight"`
	Variant      GroomingVariant `json:"variant"`
	Addons       []string        `json:"addons,omitempty"`
}

func (GroomingDetails) Service() ServiceType { return ServiceGrooming }

func (g GroomingDetails) MissingField() string {
	return firstMissing(
		"pet_name", g.PetName,
		"owner_name", g.OwnerName,
		"whatsapp", g.WhatsApp,
		"weight", string(g.Weight),
		"variant", string(g.Variant),
	)
}

// PetProfile is shared by the daycare and hotel forms.
type PetProfile struct {
	Name       string `json:"name"`
	Breed      string `json:"breed"`
	Sex        string `json:"sex"`
	Age        string `json:"age"`
	IsNeutered *bool  `json:"is_neutered"`
}

func (p PetProfile) MissingField() string {
	return firstMissing("pet.name", p.Name, "pet.breed", p.Breed)
}

type DaycareTutor struct {
	Name             string `json:"name"`
	RG               string `json:"rg"`
	Address          string `json:"address"`
	ContactPhone     string `json:"contact_phone"`
	EmergencyContact string `json:"emergency_contact"`
}

func (t DaycareTutor) MissingField() string {
	return firstMissing(
		"tutor.name", t.Name,
		"tutor.contact_phone", t.ContactPhone,
		"tutor.emergency_contact", t.EmergencyContact,
	)
}

type DaycareHealth struct {
	VetPhone       string `json:"vet_phone"`
	LastVaccine    string `json:"last_vaccine"`
	LastDeworming  string `json:"last_deworming"`
	LastFleaRemedy string `json:"last_flea_remedy"`
}

func (h DaycareHealth) MissingField() string {
	return firstMissing("health.vet_phone", h.VetPhone)
}

type DaycareBehavior struct {
	GetsAlongWithOthers    *bool    `json:"gets_along_with_others"`
	HasAllergies           *bool    `json:"has_allergies"`
	AllergiesDescription   string   `json:"allergies_description"`
	NeedsSpecialCare       *bool    `json:"needs_special_care"`
	SpecialCareDescription string   `json:"special_care_description"`
	DeliveredItems         []string `json:"delivered_items,omitempty"`
}

func (b DaycareBehavior) MissingField() string {
	if b.GetsAlongWithOthers == nil && b.HasAllergies == nil && b.NeedsSpecialCare == nil {
		return "behavior.answers"
	}
	if isTrue(b.HasAllergies) && strings.TrimSpace(b.AllergiesDescription) == "" {
		return "behavior.allergies_description"
	}
	if isTrue(b.NeedsSpecialCare) && strings.TrimSpace(b.SpecialCareDescription) == "" {
		return "behavior.special_care_description"
	}
	return ""
}

type DaycarePlanType string

const (
	DaycarePlan2x DaycarePlanType = "2x_week"
	DaycarePlan3x DaycarePlanType = "3x_week"
	DaycarePlan4x DaycarePlanType = "4x_week"
	DaycarePlan5x DaycarePlanType = "5x_week"
)

type DaycarePlan struct {
	Plan            DaycarePlanType `json:"plan"`
	SiblingDiscount bool            `json:"sibling_discount"`
	VisitDate       string          `json:"visit_date"`
	VisitTime       string          `json:"visit_time"`
}

func (p DaycarePlan) MissingField() string {
	return firstMissing(
		"plan.plan", string(p.Plan),
		"plan.visit_date", p.VisitDate,
		"plan.visit_time", p.VisitTime,
	)
}

type DaycareEnrollment struct {
	Pet      PetProfile      `json:"pet"`
	Tutor    DaycareTutor    `json:"tutor"`
	Health   DaycareHealth   `json:"health"`
	Behavior DaycareBehavior `json:"behavior"`
	Plan     DaycarePlan     `json:"plan"`
}

func (DaycareEnrollment) Service() ServiceType { return ServiceDaycare }

func (d DaycareEnrollment) MissingField() string {
	for _, s := range []interface{ MissingField() string }{d.Pet, d.Tutor, d.Health, d.Behavior, d.Plan} {
		if f := s.MissingField(); f != "" {
			return f
		}
	}
	return ""
}

type HotelTutor struct {
	Name        string `json:"name"`
	RG          string `json:"rg"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	SocialMedia string `json:"social_media"`
}

func (t HotelTutor) MissingField() string {
	return firstMissing("tutor.name", t.Name, "tutor.phone", t.Phone)
}

type HotelHealth struct {
	VetPhone                 string `json:"vet_phone"`
	EmergencyContactName     string `json:"emergency_contact_name"`
	EmergencyContactPhone    string `json:"emergency_contact_phone"`
	EmergencyContactRelation string `json:"emergency_contact_relation"`
	HasVaccinationCard       bool   `json:"has_vaccination_card"`
	HasVetCertificate        bool   `json:"has_vet_certificate"`
	PreexistingDisease       string `json:"preexisting_disease"`
	Allergies                string `json:"allergies"`
	Behavior                 string `json:"behavior"`
	FearsTraumas             string `json:"fears_traumas"`
	WoundsMarks              string `json:"wounds_marks"`
}

func (h HotelHealth) MissingField() string {
	return firstMissing(
		"health.emergency_contact_name", h.EmergencyContactName,
		"health.emergency_contact_phone", h.EmergencyContactPhone,
	)
}

type HotelFeeding struct {
	FoodBrand        string `json:"food_brand"`
	FoodQuantity     string `json:"food_quantity"`
	FeedingFrequency string `json:"feeding_frequency"`
	AcceptsTreats    string `json:"accepts_treats"`
	SpecialFoodCare  string `json:"special_food_care"`
}

func (f HotelFeeding) MissingField() string {
	return firstMissing(
		"feeding.food_brand", f.FoodBrand,
		"feeding.food_quantity", f.FoodQuantity,
		"feeding.feeding_frequency", f.FeedingFrequency,
	)
}

type HotelExtras struct {
	Bath      bool `json:"bath"`
	Transport bool `json:"transport"`
	Vet       bool `json:"vet"`
	Training  bool `json:"training"`
}

type HotelStayDates struct {
	CheckInDate  string      `json:"check_in_date"`
	CheckInTime  string      `json:"check_in_time"`
	CheckOutDate string      `json:"check_out_date"`
	CheckOutTime string      `json:"check_out_time"`
	Extras       HotelExtras `json:"extras"`
}

func (s HotelStayDates) MissingField() string {
	return firstMissing("stay.check_in_date", s.CheckInDate, "stay.check_out_date", s.CheckOutDate)
}

// Interval converts the form dates into a stay. Empty times fall back to
// defaultClock.
func (s HotelStayDates) Interval(defaultClock time.Duration) (StayInterval, error) {
	in, err := dateAndClock(s.CheckInDate, s.CheckInTime, defaultClock)
	if err != nil {
		return StayInterval{}, err
	}
	out, err := dateAndClock(s.CheckOutDate, s.CheckOutTime, defaultClock)
	if err != nil {
		return StayInterval{}, err
	}
	return StayInterval{CheckIn: in, CheckOut: out}, nil
}

type HotelConsent struct {
	DeclarationAccepted bool   `json:"declaration_accepted"`
	PhotoAuthorization  bool   `json:"photo_authorization"`
	CheckInSignature    string `json:"check_in_signature"`
	ProfessionalName    string `json:"professional_name"`
}

func (c HotelConsent) MissingField() string {
	if !c.DeclarationAccepted {
		return "consent.declaration_accepted"
	}
	return firstMissing("consent.check_in_signature", c.CheckInSignature)
}

type HotelStay struct {
	Pet     PetProfile     `json:"pet"`
	Tutor   HotelTutor     `json:"tutor"`
	Health  HotelHealth    `json:"health"`
	Feeding HotelFeeding   `json:"feeding"`
	Stay    HotelStayDates `json:"stay"`
	Consent HotelConsent   `json:"consent"`
}

func (HotelStay) Service() ServiceType { return ServiceHotel }

func (h HotelStay) MissingField() string {
	for _, s := range []interface{ MissingField() string }{h.Pet, h.Tutor, h.Health, h.Feeding, h.Stay, h.Consent} {
		if f := s.MissingField(); f != "" {
			return f
		}
	}
	return ""
}

// firstMissing takes name/value pairs and returns the first name whose value is blank.
func firstMissing(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return pairs[i]
		}
	}
	return ""
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

func dateAndClock(date, clock string, fallback time.Duration) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	offset := fallback
	if strings.TrimSpace(clock) != "" {
		if offset, err = ParseClock(clock); err != nil {
			return time.Time{}, err
		}
	}
	return d.Add(offset), nil
}
