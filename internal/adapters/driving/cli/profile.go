package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursepilot/coursepilot-cli/internal/core/domain"
	"github.com/coursepilot/coursepilot-cli/internal/profileparse"
)

var profileSave bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage learner profiles",
}

var profileNormalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalise a profile file into structured form",
	Long: `Extracts text from a profile file (txt, md, pdf, docx) and converts
it into a structured profile. Use --save to persist the result.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileNormalize,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [profile-id]",
	Short: "Show a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

func init() {
	profileNormalizeCmd.Flags().BoolVar(&profileSave, "save", false, "persist the normalised profile")
	profileCmd.AddCommand(profileNormalizeCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileNormalize(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	text, err := profileparse.ExtractText(args[0])
	if err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	ctx := context.Background()
	profile, err := profileService.Normalize(ctx, text)
	if err != nil {
		return fmt.Errorf("normalisation failed: %w", err)
	}

	if profileSave {
		profile, err = profileService.Save(ctx, profile)
		if err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		cmd.Printf("Profile saved with ID %s.\n", profile.ProfileID)
	}

	return printProfileJSON(cmd, profile)
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if profileStore == nil {
		return errors.New("profile store not configured")
	}

	profiles, err := profileStore.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing profiles: %w", err)
	}

	if len(profiles) == 0 {
		cmd.Println("No profiles stored.")
		return nil
	}

	for _, profile := range profiles {
		name := profile.Name
		if name == "" {
			name = "(unnamed)"
		}
		cmd.Printf("  %s  %s  %s\n", profile.ProfileID, name, profile.CareerGoal)
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	if profileStore == nil {
		return errors.New("profile store not configured")
	}

	profile, err := profileStore.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("profile %s not found", args[0])
		}
		return fmt.Errorf("loading profile: %w", err)
	}

	return printProfileJSON(cmd, *profile)
}

func printProfileJSON(cmd *cobra.Command, profile domain.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
