// Package types holds the application metadata shared by the CLI commands.
package types

const (
	Application = "aliasgen"
	Description = "Strong Alias Generator produces nominally distinct wrapper types over a shared representation type"
	WebSite     = "https://github.com/strongtypes/aliasgen"
	UI          = `
       _ _
  __ _| (_) __ _ ___  __ _  ___ _ __
 / _` + "`" + ` | | |/ _` + "`" + ` / __|/ _` + "`" + ` |/ _ \ '_ \
| (_| | | | (_| \__ \ (_| |  __/ | | |
 \__,_|_|_|\__,_|___/\__, |\___|_| |_|
                     |___/
`
)
