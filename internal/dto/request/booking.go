package request

import (
	"reflect"

	"booking-widget/internal/store"
	"booking-widget/pkg/utils"
)

func init() {
	// validate the value inside a Field; absent and null fields skip omitempty rules
	utils.RegisterCustomType(func(field reflect.Value) any {
		f, ok := field.Interface().(store.Field[string])
		if !ok || f.Ptr() == nil {
			return nil
		}
		return *f.Ptr()
	}, store.Field[string]{})
}

// UpdateBookingRequest is a partial booking. Omitted keys are left unchanged,
// explicit nulls clear the field.
type UpdateBookingRequest struct {
	Date      store.Field[string] `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      store.Field[string] `json:"time" validate:"omitempty,datetime=15:04"`
	Service   store.Field[string] `json:"service" validate:"omitempty,max=64"`
	Confirmed *bool               `json:"confirmed,omitempty"`
}

// Patch converts the request into a store patch.
func (r *UpdateBookingRequest) Patch() store.Patch {
	return store.Patch{
		Date:      r.Date,
		Time:      r.Time,
		Service:   r.Service,
		Confirmed: r.Confirmed,
	}
}
