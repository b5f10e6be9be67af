/*Package regionindex indexes many named regions for fast "which region
  covers this point" queries. Regions are additionally keyed by their
  topmost band's Y1, which bounds how far up the index needs to look
  before it can rule a region out; each candidate is then confirmed with
  region.Contains.
*/
package regionindex
