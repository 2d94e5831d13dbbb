package version

// Version is overridden at build time with
// -ldflags "-X github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/version.Version=v1.2.3".
var Version = "dev"
