// Package comic edits comic containers through an unpacked staging directory.
//
// A Comic starts Clean. Edit unpacks the container into the staging
// directory and moves it to Editing; Save repacks the staging directory as
// a CBZ, swaps it in for the original and returns to Clean. Nothing a caller
// does to the staging tree is visible in the container until Save returns
// successfully, and a failed Save leaves the original container in place.
//
// The staging directory is a single well-known path, "_temp" in the working
// directory by default, so only one Comic may be in Editing at a time per
// directory. Callers working through many containers must save (or discard)
// each one before editing the next.
//
//	c, err := comic.Open("Saga 01.cbr")
//	if err != nil {
//		return err
//	}
//	if err := c.Flatten(); err != nil {
//		c.Discard()
//		return err
//	}
//	if err := c.FormatPages("Page ", `\d+`, true); err != nil {
//		c.Discard()
//		return err
//	}
//	return c.Save()
package comic
