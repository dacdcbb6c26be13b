/*Package peakome consolidates peak calls made independently across many
  samples into one non-redundant set of fixed-length intervals, usable as
  a common feature space for cross-sample comparison.
  The pipeline filters and caps each sample's calls, merges
  near/overlapping peaks within each chromosome, rewrites every peak to
  an exact target length (by symmetric extension or splitting), and
  optionally removes remaining overlaps genome-wide with a greedy
  score-based sweep.
  All coordinates are 0-based half-open, as in BED files.
*/
package peakome
