package editor

import (
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	serrors "git.home.luguber.info/inful/scratch/internal/errors"
)

// ParseCommand splits a shell-like command string into an argument vector.
// Single- and double-quoted segments form one argument and the quotes are dropped.
// Backslashes are literal, so Windows paths survive unchanged.
func ParseCommand(command string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, serrors.InvalidEditorCommand(command, fmt.Errorf("empty command"))
	}
	words, err := shellquote.Split(literalBackslashes(command))
	if err != nil {
		return nil, serrors.InvalidEditorCommand(command, err)
	}
	if len(words) == 0 || words[0] == "" {
		return nil, serrors.InvalidEditorCommand(command, fmt.Errorf("no executable"))
	}
	return words, nil
}

// literalBackslashes escapes every backslash outside single quotes, where
// shellquote would otherwise consume it as an escape character.
func literalBackslashes(command string) string {
	if !strings.Contains(command, `\`) {
		return command
	}
	var b strings.Builder
	inSingle, inDouble := false, false
	for _, r := range command {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case r == '\\' && !inSingle:
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
