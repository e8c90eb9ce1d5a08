package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Release source, overridable through update.repository in the config file.
const (
	repoOwner = "thoreinstein"
	repoName  = "vcsroot"
)

var (
	updateCheck bool
	updateForce bool
	updatePre   bool
	updateYes   bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update vcsroot to the latest version",
	Long: `Update downloads the latest release binary from GitHub releases and
replaces the running executable. Release assets are verified against the
published checksums before the binary is swapped.

Examples:
  vcsroot update            # interactive update to the latest release
  vcsroot update --check    # only report whether an update exists
  vcsroot update --yes      # update without asking for confirmation
  vcsroot update --force    # reinstall even when already up to date
  vcsroot update --pre      # include pre-release versions`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVarP(&updateCheck, "check", "c", false, "Check for updates without installing")
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "Force update even when already on the latest version")
	updateCmd.Flags().BoolVarP(&updatePre, "pre", "p", false, "Include pre-release versions")
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repo := repoOwner + "/" + repoName
	pre := updatePre
	if appConfig != nil {
		if appConfig.Update.Repository != "" {
			repo = appConfig.Update.Repository
		}
		if appConfig.Update.Prerelease {
			pre = true
		}
	}

	current := GetVersion()
	isDevVersion := current == "dev" || current == ""
	if !isDevVersion {
		if _, err := semver.NewVersion(current); err != nil {
			return errors.Wrapf(err, "invalid current version %q", current)
		}
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Prerelease: pre,
		Validator:  &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize updater")
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return errors.Wrap(err, "failed to check for updates")
	}
	if !found || latest == nil {
		return errors.Newf("no release found for %s", repo)
	}

	skipUpdate := !isDevVersion && latest.LessOrEqual(current) && !updateForce

	if updateCheck {
		if skipUpdate {
			fmt.Printf("vcsroot %s is up to date\n", current)
		} else {
			fmt.Printf("Update available: %s (current: %s)\n", latest.Version(), current)
		}
		return nil
	}

	if skipUpdate {
		fmt.Printf("vcsroot %s is up to date\n", current)
		return nil
	}

	if !updateYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("standard input is not a terminal, use --yes to update without confirmation")
		}
		if !confirmUpdate(current, latest.Version()) {
			fmt.Println("Update cancelled")
			return nil
		}
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return errors.Wrap(err, "could not locate executable path")
	}

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return errors.Wrapf(err, "failed to update to %s", latest.Version())
	}

	fmt.Printf("Successfully updated to %s\n", latest.Version())
	return nil
}

// confirmUpdate asks the user to approve replacing the current binary.
func confirmUpdate(current, latest string) bool {
	fmt.Printf("Update vcsroot from %s to %s? [y/N]: ", current, latest)

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
