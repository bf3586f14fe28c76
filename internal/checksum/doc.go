// Package checksum provides the two content hashes currseed relies on.
//
//   - Fingerprint: a short SHA-1 prefix of a lesson title, part of the lesson's
//     identity tuple. It is compatibility data: changing the algorithm or the
//     length changes every lesson id.
//   - SHA256.CalculateRaw: the checksum of a whole seed script, reported in the
//     run summary and compared by the check command.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.CalculateRaw([]byte(script))
//	suffix := checksum.Fingerprint("3.2 Solving Equations")
package checksum
