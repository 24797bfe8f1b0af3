package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
   ___ ___  | |
  / __/ _ \ | | |
 | (_| (_) || | |
  \___\___/ |_|_|`
