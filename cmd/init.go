package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/mosif16/codex-skills/bundled"
	"github.com/mosif16/codex-skills/internal/config"
	"github.com/mosif16/codex-skills/internal/skill"
)

var flagInitForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write bundled example skills into the skills directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir := resolveSkillsDir(config.Load())

	unlock, err := acquireInitLock(dir, 5*time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	if err := skill.Materialize(dir, flagInitForce, bundled.Skills()); err != nil {
		return fmt.Errorf("cannot write bundled skills: %w", err)
	}
	printOK(fmt.Sprintf("bundled skills written to %s", dir))
	return nil
}

// acquireInitLock prevents two processes from materializing into the same
// directory at once.
func acquireInitLock(dir string, timeout time.Duration) (func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create skills directory %s: %w", dir, err)
	}
	l := flock.New(filepath.Join(dir, ".codex-skills.lock"))
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return nil, fmt.Errorf("cannot acquire init lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("another init is in progress (lock: %s)", l.Path())
		}
		time.Sleep(200 * time.Millisecond)
	}
}
