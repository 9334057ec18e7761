// hashpw.go
//
// "wordle hashpw" prints a bcrypt hash of an operator password,
// suitable for the ADMIN_PASSWORD_HASH environment variable.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	funcs["hashpw"] = subcommand{
		"[-p/--password=<pw>]",
		"Hashes an operator password for ADMIN_PASSWORD_HASH",
		func(a []string) int {
			o := struct {
				Password string `long:"password" short:"p"`
			}{}
			p := flags.NewParser(&o, 0)
			if _, err := p.ParseArgs(a); err != nil {
				die(fmt.Sprintf("parse: %v", err))
			}

			pw := o.Password
			if pw == "" {
				fmt.Fprint(os.Stderr, "password: ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					die(fmt.Sprintf("read password: %v", err))
				}
				pw = strings.TrimRight(line, "\r\n")
			}
			if pw == "" {
				return exitSubcommandUsage
			}

			b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost) // cost=10
			if err != nil {
				die(err.Error())
			}
			fmt.Println(string(b))
			return 0
		},
	}
}
