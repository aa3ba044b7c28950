package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fahmaliyi/mypw/vault"
	"golang.org/x/term"
)

// ReadPassword reads a line from stdin without echoing it.
func ReadPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return pw, err
}

// ReadPasswordMasked reads a line from stdin, echoing an asterisk per rune.
func ReadPasswordMasked(prompt string) []byte {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal; fall back to plain non-echoing input.
		pw, _ := term.ReadPassword(fd)
		fmt.Println()
		return pw
	}
	defer term.Restore(fd, state)

	var input []rune
	for {
		var buf [1]byte
		if _, err := os.Stdin.Read(buf[:]); err != nil {
			fmt.Println()
			return []byte(string(input))
		}
		c := buf[0]

		switch c {
		case 13, 10: // Enter
			fmt.Print("\r\n")
			return []byte(string(input))
		case 3: // Ctrl+C
			term.Restore(fd, state)
			fmt.Println()
			os.Exit(1)
		case 127, 8: // Backspace
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Print("\b \b")
			}
		default:
			r, _ := utf8.DecodeRune(buf[:])
			input = append(input, r)
			fmt.Print("*")
		}
	}
}

// ReadLine reads one line of regular input.
func ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Empty input takes the default.
func Confirm(prompt string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	line, err := ReadLine(fmt.Sprintf("%s [%s]: ", prompt, hint))
	if err != nil {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	case "":
		return def
	default:
		return false
	}
}

// ConfirmPhrase requires the user to type an exact phrase. Used to gate the
// destructive reset path.
func ConfirmPhrase(prompt, phrase string) bool {
	line, err := ReadLine(fmt.Sprintf("%s (type %q to proceed): ", prompt, phrase))
	if err != nil {
		return false
	}
	return line == phrase
}

// promptNewPassword asks for a master password twice and refuses empty or
// mismatched input.
func promptNewPassword() ([]byte, error) {
	password, err := ReadPassword("Enter a strong master password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := ReadPassword("Confirm master password: ")
	if err != nil {
		return nil, err
	}
	defer vault.Zero(confirm)

	if len(password) == 0 {
		return nil, fmt.Errorf("master password cannot be empty")
	}
	if string(password) != string(confirm) {
		return nil, fmt.Errorf("passwords do not match")
	}
	return password, nil
}
