package common

// ClientVersion is used for the --version flag and the User-Agent header
const ClientVersion = "0.3.0"
