// Package rgb565 provides the 16-bit 5-6-5 color format used by ILI9341 class
// display controllers.
//
// A Color packs red, green and blue into one 16-bit word:
//
//	bit 15    11 10     5 4      0
//	    R R R R R G G G G G G B B B B B
//
// On the wire each pixel is sent high byte first. Image stores its pixels in
// that same order so a frame can be streamed to the controller without any
// conversion.
//
// Example usage:
//
//	// Create a 320x240 image
//	img := rgb565.NewImage(image.Rect(0, 0, 320, 240))
//
//	// Set a pixel to red
//	img.SetRGB565(10, 20, rgb565.Red)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Navy), image.Point{}, draw.Src)
//
//	// Raw frame, ready for the controller
//	raw := img.Pix
package rgb565
