package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName               = "bool"
	booleanFlagTrueLiteral            = "true"
	booleanFlagAcceptedValuesListing  = "true, false, yes, no, on, off, 1, 0"
	booleanFlagInvalidValueErrorLabel = "invalid boolean value"
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

// booleanFlagValue is a pflag.Value accepting the literals above. A negated value stores the
// inverse of what was parsed, so "--no-size" clears a show-size target.
type booleanFlagValue struct {
	target  *bool
	flagKey string
	negated bool
}

func (value *booleanFlagValue) Set(input string) error {
	if value == nil || value.target == nil {
		return fmt.Errorf("%s %q", booleanFlagInvalidValueErrorLabel, input)
	}
	parsed, ok := parseBooleanLiteral(input)
	if !ok {
		return fmt.Errorf("%s %q for --%s; accepted values: %s", booleanFlagInvalidValueErrorLabel, input, value.flagKey, booleanFlagAcceptedValuesListing)
	}
	*value.target = parsed != value.negated
	return nil
}

func (value *booleanFlagValue) String() string {
	if value == nil || value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target != value.negated)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

func parseBooleanLiteral(input string) (bool, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		normalized = booleanFlagTrueLiteral
	}
	parsed, ok := booleanFlagLiterals[normalized]
	return parsed, ok
}

// registerBooleanFlag adds a presence flag that also accepts an explicit literal value.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	addBooleanFlag(flagSet, &booleanFlagValue{target: target, flagKey: name}, defaultValue, false, usage)
}

// registerNegatedBooleanFlag adds a presence flag that turns target off, such as --no-size.
func registerNegatedBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	addBooleanFlag(flagSet, &booleanFlagValue{target: target, flagKey: name, negated: true}, defaultValue, true, usage)
}

func addBooleanFlag(flagSet *pflag.FlagSet, flagValue *booleanFlagValue, defaultValue bool, negated bool, usage string) {
	if flagSet == nil || flagValue.target == nil {
		return
	}
	*flagValue.target = defaultValue
	flagSet.Var(flagValue, flagValue.flagKey, usage)
	if lookup := flagSet.Lookup(flagValue.flagKey); lookup != nil {
		lookup.DefValue = strconv.FormatBool(defaultValue != negated)
		lookup.NoOptDefVal = booleanFlagTrueLiteral
	}
}

// normalizeBooleanFlagArguments joins "--flag value" pairs into "--flag=value" for boolean
// flags when value is a recognized literal, so that pflag does not read it as a positional path.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	if command == nil || len(arguments) == 0 {
		return arguments
	}
	booleanFlags := map[string]struct{}{}
	command.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Value != nil && flag.Value.Type() == booleanFlagTypeName {
			booleanFlags[flag.Name] = struct{}{}
		}
	})
	if len(booleanFlags) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		currentArgument := arguments[index]
		if currentArgument == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		if strings.HasPrefix(currentArgument, "--") && !strings.Contains(currentArgument, "=") {
			flagName := strings.TrimPrefix(currentArgument, "--")
			if _, exists := booleanFlags[flagName]; exists && index+1 < len(arguments) {
				nextArgument := arguments[index+1]
				if _, valid := parseBooleanLiteral(nextArgument); valid && nextArgument != "" && !strings.HasPrefix(nextArgument, "-") {
					normalized = append(normalized, fmt.Sprintf("--%s=%s", flagName, nextArgument))
					index += 2
					continue
				}
			}
		}
		normalized = append(normalized, currentArgument)
		index++
	}
	return normalized
}
