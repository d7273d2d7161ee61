package models

// Appointment represents a scheduled visit. ClientID is a soft reference:
// it is never validated against the client collection, dangling values are
// allowed.
type Appointment struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"client_id,omitempty"`
	Name        string   `json:"name"`
	Medications []string `json:"medications,omitempty"`
	Time        string   `json:"time,omitempty"`
	ServiceType string   `json:"service_type,omitempty"`
	Status      string   `json:"status,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// AppointmentPatch carries a partial update; nil fields are left untouched.
type AppointmentPatch struct {
	ClientID    *string   `json:"client_id"`
	Name        *string   `json:"name"`
	Medications *[]string `json:"medications"`
	Time        *string   `json:"time"`
	ServiceType *string   `json:"service_type"`
	Status      *string   `json:"status"`
	Notes       *string   `json:"notes"`
}

// Apply merges the patch into the appointment, last write wins per field.
func (p AppointmentPatch) Apply(a *Appointment) {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Medications != nil {
		a.Medications = *p.Medications
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.ServiceType != nil {
		a.ServiceType = *p.ServiceType
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
}
