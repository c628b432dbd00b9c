package errcodes

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

const (
	UnknownError = "UNKNOWN_ERROR"

	// PluginInstallError is reported back to the caller instead of failing.
	PluginInstallError = -125083
)

// Caller selects the table HandleProcessErrors checks an exit code against.
type Caller string

const (
	CallerInstaller      Caller = "installer"
	CallerPackageManager Caller = "package_manager"
	CallerSystem         Caller = "system"
)

// Code is one documented exit code.
type Code struct {
	Value       int
	Name        string
	Description string
}

var pkgMgrCodeRe = regexp.MustCompile(`error code ([-+]\d+)`)

var systemCodes = []Code{
	{Value: 0, Name: "ERROR_SUCCESS", Description: "The operation completed successfully."},
	{Value: 1, Name: "ERROR_INVALID_FUNCTION", Description: "Incorrect function."},
	{Value: 2, Name: "ERROR_FILE_NOT_FOUND", Description: "The system cannot find the file specified."},
	{Value: 3, Name: "ERROR_PATH_NOT_FOUND", Description: "The system cannot find the path specified."},
	{Value: 5, Name: "ERROR_ACCESS_DENIED", Description: "Access is denied."},
	{Value: 6, Name: "ERROR_INVALID_HANDLE", Description: "The handle is invalid."},
	{Value: 53, Name: "ERROR_BAD_NETPATH", Description: "The network path was not found."},
	{Value: 54, Name: "ERROR_NETWORK_BUSY", Description: "The network is busy."},
	{Value: 2202, Name: "ERROR_BAD_USERNAME", Description: "The specified username is invalid."},
	{Value: 2250, Name: "ERROR_NOT_CONNECTED", Description: "This network connection does not exist."},
}

var installerSuccess = []string{"ERROR_SUCCESS", "ERROR_SUCCESS_REBOOT_INITIATED", "ERROR_SUCCESS_REBOOT_REQUIRED"}

// LookupPackageManager resolves out.ReturnCode and fills the description
// placeholders from args.
func LookupPackageManager(out models.ProcessOutput, args ...any) Code {
	c := lookup(packageManagerCodes, out)
	c.Description = format(c.Description, args)
	return c
}

func LookupInstaller(out models.ProcessOutput) Code {
	return lookup(installerCodes, out)
}

func LookupSystem(out models.ProcessOutput) Code {
	return lookup(systemCodes, out)
}

// Options tune HandleProcessErrors.
type Options struct {
	Ignore []int
	Args   []any
	// AppendReturnCode adds the discovered package manager code to Args.
	AppendReturnCode bool
}

// HandleProcessErrors checks a finished process against the exit code table
// of caller. It returns a ProcessError for failures, and the code itself for
// the rare package manager results that are reported rather than raised.
func HandleProcessErrors(caller Caller, out models.ProcessOutput, opts Options) (*Code, error) {
	switch caller {
	case CallerInstaller:
		return nil, installerErrors(out, opts.Ignore)
	case CallerPackageManager:
		return packageManagerErrors(out, opts)
	default:
		return nil, systemErrors(out, opts.Ignore)
	}
}

func installerErrors(out models.ProcessOutput, ignore []int) error {
	c := LookupInstaller(out)
	if slices.Contains(ignore, c.Value) {
		return nil
	}
	if c.Name == UnknownError {
		return systemErrors(out, ignore)
	}
	if slices.Contains(installerSuccess, c.Name) || c.Value == 0 {
		return nil
	}
	return srvErrors.NewProcessError(string(CallerInstaller), c.Value, c.Name, c.Description)
}

func packageManagerErrors(out models.ProcessOutput, opts Options) (*Code, error) {
	// Remote shells replace the package manager's exit code with their own;
	// the real one is only printed on stderr.
	if out.ReturnCode != 0 {
		m := pkgMgrCodeRe.FindStringSubmatch(out.Stderr)
		if m == nil {
			return nil, srvErrors.NewProcessError(string(CallerPackageManager), out.ReturnCode, UnknownError, strings.TrimSpace(out.Stderr))
		}
		code, err := strconv.Atoi(strings.TrimPrefix(m[1], "+"))
		if err != nil {
			return nil, srvErrors.NewProcessError(string(CallerPackageManager), out.ReturnCode, UnknownError, m[0])
		}
		out.ReturnCode = code
	}

	args := opts.Args
	if opts.AppendReturnCode {
		args = append(slices.Clone(args), out.ReturnCode)
	}

	c := LookupPackageManager(out, args...)
	if slices.Contains(opts.Ignore, c.Value) {
		return nil, nil
	}
	if c.Value == PluginInstallError {
		return &c, nil
	}
	if c.Name != "Success" && c.Name != "RebootNeeded" {
		return nil, srvErrors.NewProcessError(string(CallerPackageManager), c.Value, c.Name, c.Description)
	}
	return nil, nil
}

func systemErrors(out models.ProcessOutput, ignore []int) error {
	if slices.Contains(ignore, out.ReturnCode) {
		return nil
	}
	c := LookupSystem(out)
	if c.Value != 0 {
		return srvErrors.NewProcessError(string(CallerSystem), c.Value, c.Name, c.Description)
	}
	return nil
}

func lookup(table []Code, out models.ProcessOutput) Code {
	for _, c := range table {
		if c.Value == out.ReturnCode {
			return c
		}
	}
	return Code{
		Value:       out.ReturnCode,
		Name:        UnknownError,
		Description: fmt.Sprintf("stdout: %s \nstderr: %s", out.Stdout, out.Stderr),
	}
}

// format replaces {0}, {1}... with args. Placeholders without an argument
// are left as they are.
func format(s string, args []any) string {
	if len(args) == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
