package store

import (
	"time"

	"github.com/lucyai/lucy-support-be/internal/models"
)

const appointmentIDPrefix = "APT"

func (s *Store) loadAppointments() ([]models.Appointment, LoadState) {
	var appointments []models.Appointment
	state := s.readDoc(appointmentsFile, &appointments)
	if state != LoadOK {
		return nil, state
	}
	return appointments, LoadOK
}

// Appointments returns a snapshot of the appointment collection.
func (s *Store) Appointments() []models.Appointment {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()
	appointments, _ := s.loadAppointments()
	return appointments
}

// AppointmentsState returns the snapshot together with its load state.
func (s *Store) AppointmentsState() ([]models.Appointment, LoadState) {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()
	return s.loadAppointments()
}

// CreateAppointment stores the appointment. A caller-supplied id is kept
// when free (ErrExists when taken); otherwise an APT id is probed.
// a.ClientID is a soft reference and is deliberately not checked against
// the client collection.
func (s *Store) CreateAppointment(a models.Appointment) (string, error) {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	appointments, _ := s.loadAppointments()
	taken := make(map[string]bool, len(appointments))
	for _, existing := range appointments {
		taken[existing.ID] = true
	}

	if a.ID != "" {
		if taken[a.ID] {
			return "", ErrExists
		}
	} else {
		a.ID = nextID(appointmentIDPrefix, taken, len(appointments))
	}
	a.CreatedAt = time.Now().Format("2006-01-02")
	appointments = append(appointments, a)

	if err := s.writeDoc(appointmentsFile, appointments); err != nil {
		return "", err
	}
	return a.ID, nil
}

// UpdateAppointment shallow-merges the patch into the stored record.
func (s *Store) UpdateAppointment(id string, patch models.AppointmentPatch) error {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	appointments, _ := s.loadAppointments()
	for i := range appointments {
		if appointments[i].ID == id {
			patch.Apply(&appointments[i])
			return s.writeDoc(appointmentsFile, appointments)
		}
	}
	return ErrNotFound
}

// DeleteAppointment removes the record permanently.
func (s *Store) DeleteAppointment(id string) error {
	s.apptMu.Lock()
	defer s.apptMu.Unlock()

	appointments, _ := s.loadAppointments()
	for i := range appointments {
		if appointments[i].ID == id {
			appointments = append(appointments[:i], appointments[i+1:]...)
			return s.writeDoc(appointmentsFile, appointments)
		}
	}
	return ErrNotFound
}
