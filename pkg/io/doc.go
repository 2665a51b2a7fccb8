// Package io reads and writes window spec files.
//
// A spec file holds one [window.WindowSpecs] object in either JSON or TOML,
// using the same camelCase keys in both:
//
//	{
//	  "height": 48,
//	  "width": 36,
//	  "profileSystem": "29MM SLIDER",
//	  "windowType": "Slider",
//	  "design": "SLIDING 2 SHUTTER",
//	  "glassType": "5MM CLEAR GLASS",
//	  "mesh": true,
//	  "grill": false,
//	  "lockingType": "Standard Lock",
//	  "quantity": 2,
//	  "rate": 150,
//	  "project": "Villa"
//	}
//
// The same spec in TOML:
//
//	height = 48
//	width = 36
//	profileSystem = "29MM SLIDER"
//	windowType = "Slider"
//	quantity = 2
//	rate = 150
//
// The format is chosen from the file extension (.json, .toml). Input with
// another extension is sniffed: a leading '{' means JSON.
//
// Reading never validates. [ReadSpecsOver] and [ImportSpecsOver] decode on
// top of a base spec so that only keys present in the file replace it; an
// explicit zero stays zero and is left for validation to reject.
package io
