// Package config loads sugary's CLI defaults.
//
// Values are layered with koanf, later layers winning:
//
//  1. embedded/defaults.toml
//  2. the user file, either an explicit path or
//     $XDG_CONFIG_HOME/sugary/config.toml when it exists
//  3. SUGARY_* environment variables, with "__" separating key levels
//     (SUGARY_WRAP__MAX_EXPAND sets wrap.max_expand)
package config
