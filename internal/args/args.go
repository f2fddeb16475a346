package args

import (
	"github.com/markis/lai/internal/apperr"
)

// Arguments represents the command-line arguments structure.
type Arguments struct {
	Prompt        string
	HelpRequested bool
}

// Parse scans argv (without the program name) left to right. The first
// -h ends the scan, but a bad token before it is still fatal.
func Parse(argv []string) (Arguments, error) {
	var args Arguments

	for i := 0; i < len(argv); i++ {
		switch argv[i] {
		case "-p":
			i++
			if i >= len(argv) {
				return Arguments{}, apperr.NewUsage("-p requires an argument")
			}
			args.Prompt = argv[i]
		case "-h":
			return Arguments{HelpRequested: true}, nil
		default:
			return Arguments{}, apperr.NewVerbatim(apperr.KindUsage, "Invalid option "+argv[i])
		}
	}

	return args, nil
}

// Validate checks that a prompt was given. It runs after stdin has been
// consumed, so it is kept apart from Parse.
func (a Arguments) Validate() error {
	if a.Prompt == "" {
		return apperr.NewUsage("Prompt (-p) is required.")
	}
	return nil
}
