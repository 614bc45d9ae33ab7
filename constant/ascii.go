package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
 _   _____    __  ______________  _____
| | / / _ |  / / /_  __/  _/ _ \/ ___/
| |/ / __ | / /__ / / _/ // ___(__  )
|___/_/ |_|/____//_/ /___/_/  /____/
`
