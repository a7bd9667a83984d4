package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/domain/appointment"
	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/medrecord"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/db"
	"github.com/clinic/clinic/pkg/civil"
)

func smokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Exercise every repository end to end against a live database",
		RunE: func(cmd *cobra.Command, args []string) error {
			keep, _ := cmd.Flags().GetBool("keep")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return runSmoke(ctx, pool, newLogger(), keep)
		},
	}
	cmd.Flags().Bool("keep", false, "Leave the created rows in place")
	return cmd
}

// runSmoke walks the whole data-access surface in one pass: patient, doctor,
// appointment (default status, then Completed), medical records with and
// without a doctor, by-patient ordering, and search. Created rows are deleted
// at the end unless keep is set.
func runSmoke(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger, keep bool) error {
	patients := patient.NewService(patient.NewRepoPG(pool))
	doctors := doctor.NewService(doctor.NewRepoPG(pool))
	appointments := appointment.NewService(appointment.NewRepoPG(pool))
	records := medrecord.NewService(medrecord.NewRepoPG(pool))

	// Patient
	dob, err := civil.ParseDate("1990-05-15")
	if err != nil {
		return err
	}
	p := &patient.Patient{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: dob,
		Gender:      "Male",
		PhoneNumber: "555-0101",
		Email:       "john.doe@example.com",
	}
	patientID, err := patients.Create(ctx, p)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	logger.Info().Int64("patient_id", patientID).Msg("patient created")

	// Doctor
	d := &doctor.Doctor{
		FirstName:      "Alice",
		LastName:       "Smith",
		Specialization: "Cardiologist",
		Email:          "alice.smith@example.com",
	}
	doctorID, err := doctors.Create(ctx, d)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	logger.Info().Int64("doctor_id", doctorID).Msg("doctor created")

	// Appointment a week out; status must default to Scheduled.
	slot, err := civil.ParseTimeOfDay("10:30:00")
	if err != nil {
		return err
	}
	a := &appointment.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: civil.DateOf(time.Now()).AddDays(7),
		AppointmentTime: slot,
		Reason:          "Routine Checkup",
	}
	appointmentID, err := appointments.Create(ctx, a)
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	booked, err := appointments.Get(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("get appointment: %w", err)
	}
	if booked.Status != appointment.StatusScheduled {
		return fmt.Errorf("expected status %s, got %s", appointment.StatusScheduled, booked.Status)
	}
	logger.Info().Int64("appointment_id", appointmentID).Str("status", booked.Status).Msg("appointment booked")

	booked.Status = appointment.StatusCompleted
	if err := appointments.Update(ctx, booked); err != nil {
		return fmt.Errorf("complete appointment: %w", err)
	}
	logger.Info().Msg("appointment marked completed")

	// Medical records: one with a doctor, one without.
	first := &medrecord.MedicalRecord{
		PatientID: patientID,
		DoctorID:  &doctorID,
		Diagnosis: "Mild hypertension",
		Treatment: "Lifestyle changes",
	}
	if _, err := records.Create(ctx, first); err != nil {
		return fmt.Errorf("create medical record: %w", err)
	}
	second := &medrecord.MedicalRecord{
		PatientID: patientID,
		Diagnosis: "Follow-up",
		Notes:     "Self-reported improvement",
	}
	if _, err := records.Create(ctx, second); err != nil {
		return fmt.Errorf("create second medical record: %w", err)
	}

	history, err := records.ListByPatient(ctx, patientID)
	if err != nil {
		return fmt.Errorf("list medical records: %w", err)
	}
	if len(history) != 2 {
		return fmt.Errorf("expected 2 medical records, got %d", len(history))
	}
	if history[0].RecordDate.Before(history[1].RecordDate) {
		return fmt.Errorf("medical records not in most-recent-first order")
	}
	logger.Info().Int("records", len(history)).Msg("medical history verified")

	// Search
	found, err := patients.Search(ctx, "Doe")
	if err != nil {
		return fmt.Errorf("search patients: %w", err)
	}
	if len(found) == 0 {
		return fmt.Errorf("search for %q returned no patients", "Doe")
	}
	logger.Info().Int("matches", len(found)).Msg("patient search verified")

	// The store must refuse to delete a patient that appointments and records
	// still point at.
	if err := patients.Delete(ctx, patientID); err == nil {
		return fmt.Errorf("deleting a referenced patient should have failed")
	} else if !db.IsForeignKeyViolation(err) {
		return fmt.Errorf("expected a foreign-key violation deleting a referenced patient, got: %w", err)
	}
	logger.Info().Msg("referenced-delete rejection verified")

	if keep {
		logger.Info().Msg("smoke finished, rows kept")
		return nil
	}

	// Teardown in dependency order; the store blocks deleting referenced rows.
	for _, rec := range history {
		if err := records.Delete(ctx, rec.ID); err != nil {
			return fmt.Errorf("delete medical record %d: %w", rec.ID, err)
		}
	}
	if err := appointments.Delete(ctx, appointmentID); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if err := patients.Delete(ctx, patientID); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if err := doctors.Delete(ctx, doctorID); err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	logger.Info().Msg("smoke finished, rows cleaned up")
	return nil
}
