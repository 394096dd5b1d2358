// Package imageio loads and saves the core image.Image buffer type against
// real image file formats, dispatching on the file's lowercased extension:
// one of .png, .bmp, .tga, or .jpg/.jpeg.
//
// This package sits outside the solver core: no part of the core blocks on
// I/O. Load runs before a build, Save runs after a render.
package imageio
