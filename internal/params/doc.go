// Package params layers run-time overrides on top of the project configuration.
//
// Overrides come from three places, applied in this order so later sources win:
//
//   - the process environment (after .env has been loaded by godotenv)
//   - files passed with --env-file, read with godotenv.Read
//   - CLI flags: --output and repeated --csv provider=path
//
// Recognized variables:
//
//	CURRSEED_OUTPUT=data/seed/curriculum_seed.sql
//	CURRSEED_CSV_MATH_MEDIC=/exports/math-medic.csv
//	CURRSEED_CSV_ILLUSTRATIVE_MATH=/exports/im.csv
package params
