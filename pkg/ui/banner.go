package ui

import "strings"

const (
	reset      = "\033[0m"
	bold       = "\033[1m"
	idleGreen  = "\033[38;5;46m"
	warmYellow = "\033[38;5;226m"
	busyRed    = "\033[38;5;196m"
	trackGray  = "\033[38;5;238m"
	usageBlue  = "\033[38;5;25m"
	textWhite  = "\033[38;5;255m"
)

var dwmLetters = [][]string{
	{"██████╗ ", "██╔══██╗", "██║  ██║", "██║  ██║", "██████╔╝", "╚═════╝ "},
	{"██╗    ██╗", "██║    ██║", "██║ █╗ ██║", "██║███╗██║", "╚███╔███╔╝", " ╚══╝╚══╝ "},
	{"███╗   ███╗", "████╗ ████║", "██╔████╔██║", "██║╚██╔╝██║", "██║ ╚═╝ ██║", "╚═╝     ╚═╝"},
}

// Banner renders the dwm wordmark. Letters follow the idle-to-busy ramp used
// for CPU bars; colored=false drops every escape sequence.
func Banner(colored bool) string {
	paint := func(code, s string) string {
		if !colored {
			return s
		}
		return code + s + reset
	}

	var b strings.Builder
	gradient := []string{idleGreen, warmYellow, busyRed}
	rows := make([]string, len(dwmLetters[0]))
	for i, letter := range dwmLetters {
		for row := range letter {
			rows[row] += paint(bold+gradient[i%len(gradient)], letter[row]) + " "
		}
	}
	for _, line := range rows {
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(paint(bold+textWhite, "dwmstatus") + "  •  " +
		paint(usageBlue, "████") + paint(trackGray, "░░░░") + "  status line for dwm\n\n")

	return b.String()
}
