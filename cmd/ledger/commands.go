package main

import (
	"fmt"
	"io"
	"lifeledger-service/internal/app/delivery/presenter"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/app/services/core/notification"
	"lifeledger-service/internal/app/services/core/registration"
	"lifeledger-service/internal/app/services/core/registry"
	"lifeledger-service/internal/app/services/shared/locker"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagName       = "name"
	flagAge        = "age"
	flagGender     = "gender"
	flagMedicalID  = "medical-id"
	flagOrgans     = "organs"
	flagWeight     = "weight"
	flagHeight     = "height"
	flagBloodType  = "blood-type"
	flagEmail      = "email"
	flagPhone      = "phone"
	flagUrgency    = "urgency"
	flagGenerateID = "generate-id"
	flagNoNotify   = "no-notify"
)

func newRegisterCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "register <donor|patient|pledge>",
		Short:     "Register a donor, patient or pledge on the registry",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.RoleDonor), string(models.RolePatient), string(models.RolePledge)},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := models.ParseRole(args[0])
			if err != nil {
				return err
			}

			form, err := registrationFormFromFlags(cmd.Flags(), role)
			if err != nil {
				return err
			}

			ctx, cancel := rt.commandContext(cmd)
			defer cancel()

			session, closeSession, err := rt.openSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			notifier := notification.NewHTTPNotifier(
				rt.serviceLog,
				rt.internalConfig.Notification.RelayUrl,
				time.Duration(rt.internalConfig.Notification.TimeoutInSeconds)*time.Second,
			)
			if noNotify, _ := cmd.Flags().GetBool(flagNoNotify); noNotify {
				notifier = nil
			}

			usecase := registration.NewRegistrationUsecase(rt.serviceLog, rt.internalConfig, locker.NewNoopLocker(), notifier, nil)
			err = utils.LogOperation(rt.serviceLog, "ledger.register", session.ID, func() error {
				outcome, err := usecase.Register(ctx, session, form)
				if err != nil {
					return err
				}
				rt.log.WithFields(logrus.Fields{
					"medical_id":   outcome.MedicalID,
					"tx_hash":      outcome.Result.TxHash,
					"block_number": outcome.Result.BlockNumber,
					"gas_used":     outcome.Result.GasUsed,
				}).Info(constvars.RegistrationSuccessMessage)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", role.Label(), outcome.MedicalID, outcome.Result.TxHash)
				return nil
			})
			// the confirmation runs in the background and must finish before exit
			usecase.Wait()
			return err
		},
	}

	flags := cmd.Flags()
	flags.String(flagName, "", "full name")
	flags.Int(flagAge, 0, "age in years")
	flags.String(flagGender, "", "Male, Female or Other")
	flags.String(flagMedicalID, "", "medical id, see --generate-id")
	flags.StringSlice(flagOrgans, nil, "comma separated organs")
	flags.Int(flagWeight, 0, "weight in kg")
	flags.Int(flagHeight, 0, "height in cm")
	flags.String(flagBloodType, "", "blood type")
	flags.String(flagEmail, "", "confirmation email address")
	flags.String(flagPhone, "", "phone number")
	flags.Int(flagUrgency, 0, "patient urgency level 1-5")
	flags.Bool(flagGenerateID, false, "generate the medical id from the role and name")
	flags.Bool(flagNoNotify, false, "skip the confirmation email")
	return cmd
}

// registrationFormFromFlags leaves unset numeric flags nil so validation reports
// them as missing rather than as zero.
func registrationFormFromFlags(flags *pflag.FlagSet, role models.Role) (*requests.RegistrationForm, error) {
	form := &requests.RegistrationForm{Role: string(role)}
	form.FullName, _ = flags.GetString(flagName)
	form.Gender, _ = flags.GetString(flagGender)
	form.MedicalID, _ = flags.GetString(flagMedicalID)
	form.Organs, _ = flags.GetStringSlice(flagOrgans)
	form.BloodType, _ = flags.GetString(flagBloodType)
	form.Email, _ = flags.GetString(flagEmail)
	form.Phone, _ = flags.GetString(flagPhone)

	form.Age = changedInt(flags, flagAge)
	form.Weight = changedInt(flags, flagWeight)
	form.Height = changedInt(flags, flagHeight)
	form.UrgencyLevel = changedInt(flags, flagUrgency)

	if generate, _ := flags.GetBool(flagGenerateID); generate && form.MedicalID == "" {
		medicalID, err := utils.GenerateMedicalID(role, form.FullName)
		if err != nil {
			return nil, err
		}
		form.MedicalID = medicalID
	}

	utils.SanitizeRegistrationForm(form)
	return form, nil
}

func changedInt(flags *pflag.FlagSet, name string) *int {
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetInt(name)
	if err != nil {
		return nil
	}
	return &value
}

func newSearchCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "search <donor|patient> <medical-id>",
		Short:     "Look up one record by medical id",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.RoleDonor), string(models.RolePatient)},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := models.ParseRole(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := rt.commandContext(cmd)
			defer cancel()

			view := presenter.NewSearchView(role)
			session, closeSession, err := rt.openSession(ctx)
			if err != nil {
				view.Fail(err)
				printSearchView(cmd.OutOrStdout(), view)
				return err
			}
			defer closeSession()

			registrant, err := registry.NewRegistryUsecase(rt.serviceLog).Search(ctx, session, role, args[1])
			if err != nil {
				view.Fail(err)
				printSearchView(cmd.OutOrStdout(), view)
				return err
			}
			view.Show(registrant)
			printSearchView(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func printSearchView(out io.Writer, view *presenter.SearchView) {
	fmt.Fprintln(out, view.Message)
	if view.Status != presenter.StatusSuccess {
		return
	}
	for _, slot := range view.Slots {
		fmt.Fprintf(out, "  %-11s %s\n", slot.Label+":", slot.Value)
	}
	if view.Summary != nil {
		fmt.Fprintf(out, "  %-11s %s\n", "Status:", view.Summary.Status)
		fmt.Fprintf(out, "  %-11s %d\n", "Organs:", view.Summary.OrganCount)
		fmt.Fprintf(out, "  %-11s %s\n", "BMI:", view.Summary.BMI)
	}
}

func newListCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:       "list <donor|patient>",
		Short:     "Print every record of a role as a table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.RoleDonor), string(models.RolePatient)},
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := models.ParseRole(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := rt.commandContext(cmd)
			defer cancel()

			session, closeSession, err := rt.openSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			out := newTableRowWriter(cmd.OutOrStdout())
			table := presenter.NewTablePresenter(out)
			_, err = registry.NewRegistryUsecase(rt.serviceLog).ListAll(ctx, session, role, table.Visit)
			out.Render()
			if err != nil {
				rt.log.WithField("rendered_rows", table.Rows()).Warn("listing aborted")
				return err
			}
			return nil
		},
	}
}

func newMedicalIDCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "medical-id <donor|patient|pledge> <full name>",
		Short: "Generate a medical id without touching the registry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := models.ParseRole(args[0])
			if err != nil {
				return err
			}
			medicalID, err := utils.GenerateMedicalID(role, args[1])
			if err != nil {
				return exceptions.ErrMedicalIDGenerate(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), medicalID)
			return nil
		},
	}
}

func newStatsCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print donor and patient counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := rt.commandContext(cmd)
			defer cancel()

			session, closeSession, err := rt.openSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			stats, err := registry.NewRegistryUsecase(rt.serviceLog).Stats(ctx, session)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Donors:   %d\nPatients: %d\n", stats.Donors, stats.Patients)
			return nil
		},
	}
}
