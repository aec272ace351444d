// Package media classifies user-selected files as photo or video.
//
// Classification is a closed two-way decision made from the filename suffix
// alone: a short allow-list of still-image extensions maps to KindPhoto and
// every other name, including names with no extension, maps to KindVideo. No
// file is opened or probed.
package media
