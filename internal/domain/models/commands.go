package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownManagementLevel indicates a management tier outside low, medium, high and optimal.
var ErrUnknownManagementLevel = errors.New("unknown management level")

// ManagementLevel enumerates the husbandry tiers, ordered by increasing performance.
type ManagementLevel string

const (
	ManagementLow     ManagementLevel = "low"
	ManagementMedium  ManagementLevel = "medium"
	ManagementHigh    ManagementLevel = "high"
	ManagementOptimal ManagementLevel = "optimal"
)

// ManagementLevels lists every tier from lowest to highest.
var ManagementLevels = []ManagementLevel{ManagementLow, ManagementMedium, ManagementHigh, ManagementOptimal}

// ParseManagementLevel derives a ManagementLevel from free-form input such as "Medium" or " high ".
func ParseManagementLevel(value string) (ManagementLevel, error) {
	normalized := ManagementLevel(strings.TrimSpace(strings.ToLower(value)))

	switch normalized {
	case ManagementLow, ManagementMedium, ManagementHigh, ManagementOptimal:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownManagementLevel, value)
	}
}

// Valid reports whether l is one of the four known tiers.
func (l ManagementLevel) Valid() bool {
	return l.Rank() >= 0
}

// Rank returns the position of l in ManagementLevels, or -1 when unknown.
func (l ManagementLevel) Rank() int {
	for i, level := range ManagementLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// Next returns the tier immediately above l. Optimal has no successor and returns itself.
func (l ManagementLevel) Next() ManagementLevel {
	switch l {
	case ManagementLow:
		return ManagementMedium
	case ManagementMedium:
		return ManagementHigh
	default:
		return ManagementOptimal
	}
}

// CommandType enumerates the supported text commands.
type CommandType string

const (
	CommandSimulate CommandType = "simulate"
	CommandCompare  CommandType = "compare"
	CommandRank     CommandType = "rank"
	CommandBreeds   CommandType = "breeds"
	CommandHelp     CommandType = "help"
	CommandUnknown  CommandType = "unknown"
)

// Command captures a parsed text command and its arguments.
type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand derives a Command instance from free-form text such as "/simulate saanen medium".
func ParseCommand(message string) Command {
	normalized := strings.TrimSpace(strings.ToLower(message))

	tokens := strings.Fields(normalized)
	cmd := Command{Raw: message}

	if len(tokens) == 0 {
		cmd.Type = CommandUnknown
		return cmd
	}

	head := strings.TrimPrefix(tokens[0], "/")
	switch head {
	case string(CommandSimulate):
		cmd.Type = CommandSimulate
	case string(CommandCompare):
		cmd.Type = CommandCompare
	case string(CommandRank), "ranking":
		cmd.Type = CommandRank
	case string(CommandBreeds):
		cmd.Type = CommandBreeds
	case string(CommandHelp):
		cmd.Type = CommandHelp
	default:
		cmd.Type = CommandUnknown
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
