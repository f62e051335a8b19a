// Package config manages user-level settings stored at ~/.scaffold-next/config.yaml.
// Values can also come from SCAFFOLD_NEXT_* environment variables or from command
// flags bound by the cli package. Settings cover the operation log location,
// console color, and verbosity.
package config
