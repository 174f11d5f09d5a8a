package constant

// Logo is printed at the top of the root command help.
const Logo = `
 _____ ____  _____  _____ ___
|_   _|  _ \|_ _\ \/ /_ _/ _ \
  | | | |_) || | \  / | | | | |
  | | |  _ < | | /  \ | | |_| |
  |_| |_| \_\___/_/\_\___\___/
`
