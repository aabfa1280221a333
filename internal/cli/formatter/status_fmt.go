package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chime/internal/contract"
	"github.com/alexanderramin/chime/internal/resolver"
)

// FormatStatus formats a StatusResponse into the "what's happening now"
// summary printed by `chime now`.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	headline := KindStyle(resp.Kind)

	switch resp.Kind {
	case resolver.NoScheduleToday:
		b.WriteString(headline.Render("No Schedule Listed") + "\n")
		b.WriteString(Dim("No saved schedule covers today.") + "\n")
	case resolver.SchoolClosed:
		b.WriteString(headline.Render("School Closed") + "\n")
		if resp.ScheduleName != "" {
			b.WriteString(Dim(fmt.Sprintf("Schedule: %s", resp.ScheduleName)) + "\n")
		}
	case resolver.BeforeSchool:
		b.WriteString(headline.Render("Before School") + "\n")
		b.WriteString(fmt.Sprintf("First block starts in %s\n", Bold(FormatRemaining(resp.Remaining))))
		b.WriteString(Dim(fmt.Sprintf("Schedule: %s", resp.ScheduleName)) + "\n")
	case resolver.InBlock, resolver.PassingTime:
		b.WriteString(headline.Render(resp.BlockLabel) + "\n")
		b.WriteString(fmt.Sprintf("%s remaining\n", Bold(FormatRemaining(resp.Remaining))))
		if resp.Kind == resolver.InBlock {
			b.WriteString(Dim(fmt.Sprintf("%s – %s · %s",
				FormatClock(resp.BlockStart, resp.Use24Hour),
				FormatClock(resp.BlockEnd, resp.Use24Hour),
				resp.ScheduleName)) + "\n")
		} else {
			b.WriteString(Dim(fmt.Sprintf("Schedule: %s", resp.ScheduleName)) + "\n")
		}
	}

	return b.String()
}
