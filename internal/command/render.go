package command

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peer-tools/intra/internal/intra"
)

// ErrNoCursus indicates the profile has no usable cursus enrollment for the
// grade/blackhole renderers.
var ErrNoCursus = errors.New("no cursus enrollment")

// labelWidth is the fixed output column: a 20-character label, then the value.
const labelWidth = 20

// Dispatcher renders profile fields to out. The clock is injectable so the
// blackhole day count is deterministic under test.
type Dispatcher struct {
	out    io.Writer
	now    func() time.Time
	cursus string
}

// NewDispatcher returns a dispatcher writing to out. cursus optionally names
// the enrollment used by the cursus-dependent renderers; when empty the most
// recent enrollment is used.
func NewDispatcher(out io.Writer, cursus string) *Dispatcher {
	return &Dispatcher{
		out:    out,
		now:    time.Now,
		cursus: cursus,
	}
}

// Dispatch runs the renderer for cmd. The summary feeds the ID renderer; all
// others read the profile.
func (d *Dispatcher) Dispatch(cmd Command, summary *intra.UserSummary, profile *intra.UserProfile) error {
	switch cmd {
	case ID:
		return d.printField("ID", summary.ID)
	case Login:
		return d.printField("Login", profile.Login)
	case Email:
		return d.printField("Email", profile.Email)
	case Wallet:
		return d.printField("Wallet", profile.Wallet)
	case CorrectionPoint:
		return d.printField("Correction point", profile.CorrectionPoint)
	case Blackhole:
		return d.renderBlackhole(profile)
	case Me:
		return d.renderMe(profile)
	}
	return fmt.Errorf("%w: %d", ErrUnknown, int(cmd))
}

func (d *Dispatcher) printField(label string, value any) error {
	_, err := fmt.Fprintf(d.out, "%-*s%v\n", labelWidth, label, value)
	return err
}

// renderMe prints the composite profile view: header line, wallet, correction
// points, cursus name and grade, then the blackhole countdown. Output already
// printed is not suppressed when a later line fails.
func (d *Dispatcher) renderMe(profile *intra.UserProfile) error {
	title := ""
	if len(profile.Titles) > 0 {
		title = strings.Split(profile.Titles[0].Name, " ")[0]
	}
	if _, err := fmt.Fprintf(d.out, "%s | %s %s\n", profile.Displayname, title, profile.Login); err != nil {
		return err
	}

	if err := d.printField("Wallet", profile.Wallet); err != nil {
		return err
	}
	if err := d.printField("Correction point", profile.CorrectionPoint); err != nil {
		return err
	}

	cursusUser, err := d.selectCursus(profile)
	if err != nil {
		return err
	}
	if err := d.printField("Cursus", cursusUser.Cursus.Name); err != nil {
		return err
	}
	grade := ""
	if cursusUser.Grade != nil {
		grade = *cursusUser.Grade
	}
	if err := d.printField("Grade", grade); err != nil {
		return err
	}

	return d.renderBlackhole(profile)
}

// renderBlackhole prints the signed number of whole days between now and the
// selected enrollment's blackhole timestamp, negative once the deadline has
// passed. A missing timestamp is a parse error, not an "n/a" line.
func (d *Dispatcher) renderBlackhole(profile *intra.UserProfile) error {
	cursusUser, err := d.selectCursus(profile)
	if err != nil {
		return err
	}

	blackholedAt, err := time.Parse(time.RFC3339, cursusUser.BlackholedAt)
	if err != nil {
		return fmt.Errorf("failed to parse blackhole timestamp %q for cursus %q: %w",
			cursusUser.BlackholedAt, cursusUser.Cursus.Name, err)
	}

	days := int64(blackholedAt.Sub(d.now()).Hours() / 24)
	return d.printField("Blackhole", days)
}

// selectCursus picks the enrollment the cursus-dependent renderers report on:
// the configured cursus by name when set, otherwise the last enrollment in
// the list. Enrollments arrive in start order, so the last one is the
// current curriculum.
func (d *Dispatcher) selectCursus(profile *intra.UserProfile) (*intra.CursusUser, error) {
	if len(profile.CursusUsers) == 0 {
		return nil, ErrNoCursus
	}
	if d.cursus != "" {
		for i := range profile.CursusUsers {
			if strings.EqualFold(profile.CursusUsers[i].Cursus.Name, d.cursus) {
				return &profile.CursusUsers[i], nil
			}
		}
		return nil, fmt.Errorf("%w: no enrollment named %q", ErrNoCursus, d.cursus)
	}
	return &profile.CursusUsers[len(profile.CursusUsers)-1], nil
}
