package internal

// Version is the tarjimon release version
const Version = "0.2.1"
