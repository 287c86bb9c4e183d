package asciifont

import "github.com/soypat/vecfont"

// Glyph definitions are drawn on a grid 3 units wide with the Y axis pointing down.
// The baseline is at y=0, lowercase letters are 4 units tall, capitals and
// ascenders are 6 units tall and descenders reach y=2.

var brk = vecfont.Point{X: vecfont.LineBreak, Y: vecfont.LineBreak}

var definitions = []vecfont.GlyphDef{
	{Char: ' '},
	{Char: '!', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: -2}, brk, {X: 1, Y: -1}, {X: 1, Y: 0}}},
	{Char: '"', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: -5}, brk, {X: 2, Y: -6}, {X: 2, Y: -5}}},
	{Char: '#', Points: []vecfont.Point{{X: 1, Y: -5}, {X: 1, Y: -1}, brk, {X: 2, Y: -5}, {X: 2, Y: -1}, brk, {X: 0, Y: -4}, {X: 3, Y: -4}, brk, {X: 0, Y: -2}, {X: 3, Y: -2}}},
	{Char: '$', Points: []vecfont.Point{{X: 3, Y: -5}, {X: 2, Y: -6}, {X: 1, Y: -6}, {X: 0, Y: -5}, {X: 0, Y: -4}, {X: 1, Y: -3}, {X: 2, Y: -3}, {X: 3, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, brk, {X: 2, Y: -7}, {X: 1, Y: 1}}},
	{Char: '%', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 3, Y: -6}, brk, {X: 0, Y: -6}, {X: 0, Y: -5}, brk, {X: 3, Y: -1}, {X: 3, Y: 0}}},
	{Char: '&', Points: []vecfont.Point{{X: 3, Y: 0}, {X: 0, Y: -4}, {X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -5}, {X: 0, Y: -2}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -2}}},
	{Char: '\'', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: -5}}},
	{Char: '(', Points: []vecfont.Point{{X: 2, Y: -6}, {X: 1, Y: -5}, {X: 1, Y: -1}, {X: 2, Y: 0}}},
	{Char: ')', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 2, Y: -5}, {X: 2, Y: -1}, {X: 1, Y: 0}}},
	{Char: '*', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 2, Y: -1}, brk, {X: 2, Y: -5}, {X: 0, Y: -1}, brk, {X: 1, Y: -5}, {X: 1, Y: -1}}},
	{Char: '+', Points: []vecfont.Point{{X: 1, Y: -5}, {X: 1, Y: -1}, brk, {X: 0, Y: -3}, {X: 2, Y: -3}}},
	{Char: ',', Points: []vecfont.Point{{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	{Char: '-', Points: []vecfont.Point{{X: 0, Y: -3}, {X: 3, Y: -3}}},
	{Char: '.', Points: []vecfont.Point{{X: 1, Y: -1}, {X: 1, Y: 0}}},
	{Char: '/', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 3, Y: -6}}},

	{Char: '0', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -5}, {X: 1, Y: -6}, brk, {X: 3, Y: -5}, {X: 0, Y: -1}}},
	{Char: '1', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 1, Y: -6}, {X: 1, Y: 0}, brk, {X: 0, Y: 0}, {X: 2, Y: 0}}},
	{Char: '2', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 0, Y: 0}, {X: 3, Y: 0}}},
	{Char: '3', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 2, Y: -3}, {X: 1, Y: -3}, brk, {X: 2, Y: -3}, {X: 3, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}}},
	{Char: '4', Points: []vecfont.Point{{X: 2, Y: 0}, {X: 2, Y: -6}, {X: 0, Y: -2}, {X: 3, Y: -2}}},
	{Char: '5', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 0, Y: -6}, {X: 0, Y: -3}, {X: 2, Y: -3}, {X: 3, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: '6', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 1, Y: -6}, {X: 0, Y: -5}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -2}, {X: 2, Y: -3}, {X: 0, Y: -3}}},
	{Char: '7', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 3, Y: -6}, {X: 1, Y: 0}}},
	{Char: '8', Points: []vecfont.Point{{X: 1, Y: -3}, {X: 0, Y: -4}, {X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 2, Y: -3}, {X: 1, Y: -3}, {X: 0, Y: -2}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -2}, {X: 2, Y: -3}}},
	{Char: '9', Points: []vecfont.Point{{X: 3, Y: -3}, {X: 1, Y: -3}, {X: 0, Y: -4}, {X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},

	{Char: ':', Points: []vecfont.Point{{X: 1, Y: -4}, {X: 1, Y: -3}, brk, {X: 1, Y: -1}, {X: 1, Y: 0}}},
	{Char: ';', Points: []vecfont.Point{{X: 1, Y: -4}, {X: 1, Y: -3}, brk, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
	{Char: '<', Points: []vecfont.Point{{X: 3, Y: -5}, {X: 0, Y: -3}, {X: 3, Y: -1}}},
	{Char: '=', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 3, Y: -4}, brk, {X: 0, Y: -2}, {X: 3, Y: -2}}},
	{Char: '>', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 3, Y: -3}, {X: 0, Y: -1}}},
	{Char: '?', Points: []vecfont.Point{{X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 1, Y: -3}, {X: 1, Y: -2}, brk, {X: 1, Y: -1}, {X: 1, Y: 0}}},
	{Char: '@', Points: []vecfont.Point{{X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -5}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -2}, {X: 1, Y: -2}, {X: 1, Y: -4}, {X: 3, Y: -4}}},

	{Char: 'A', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -4}, {X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -4}, {X: 3, Y: 0}, brk, {X: 0, Y: -3}, {X: 3, Y: -3}}},
	{Char: 'B', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 2, Y: -3}, {X: 0, Y: -3}, brk, {X: 2, Y: -3}, {X: 3, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: 'C', Points: []vecfont.Point{{X: 3, Y: -5}, {X: 2, Y: -6}, {X: 1, Y: -6}, {X: 0, Y: -5}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}}},
	{Char: 'D', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: 'E', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 0, Y: -6}, {X: 0, Y: 0}, {X: 3, Y: 0}, brk, {X: 0, Y: -3}, {X: 2, Y: -3}}},
	{Char: 'F', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 0, Y: -6}, {X: 0, Y: 0}, brk, {X: 0, Y: -3}, {X: 2, Y: -3}}},
	{Char: 'G', Points: []vecfont.Point{{X: 3, Y: -5}, {X: 2, Y: -6}, {X: 1, Y: -6}, {X: 0, Y: -5}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -3}, {X: 2, Y: -3}}},
	{Char: 'H', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, brk, {X: 3, Y: -6}, {X: 3, Y: 0}, brk, {X: 0, Y: -3}, {X: 3, Y: -3}}},
	{Char: 'I', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 2, Y: -6}, brk, {X: 1, Y: -6}, {X: 1, Y: 0}, brk, {X: 0, Y: 0}, {X: 2, Y: 0}}},
	{Char: 'J', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}}},
	{Char: 'K', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, brk, {X: 3, Y: -6}, {X: 0, Y: -3}, {X: 3, Y: 0}}},
	{Char: 'L', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, {X: 3, Y: 0}}},
	{Char: 'M', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 1, Y: -4}, {X: 2, Y: -4}, {X: 3, Y: -6}, {X: 3, Y: 0}}},
	{Char: 'N', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 3, Y: 0}, {X: 3, Y: -6}}},
	{Char: 'O', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -5}, {X: 1, Y: -6}}},
	{Char: 'P', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 2, Y: -3}, {X: 0, Y: -3}}},
	{Char: 'Q', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -5}, {X: 1, Y: -6}, brk, {X: 2, Y: -2}, {X: 3, Y: 1}}},
	{Char: 'R', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -6}, {X: 2, Y: -6}, {X: 3, Y: -5}, {X: 3, Y: -4}, {X: 2, Y: -3}, {X: 0, Y: -3}, brk, {X: 1, Y: -3}, {X: 3, Y: 0}}},
	{Char: 'S', Points: []vecfont.Point{{X: 3, Y: -5}, {X: 2, Y: -6}, {X: 1, Y: -6}, {X: 0, Y: -5}, {X: 0, Y: -4}, {X: 1, Y: -3}, {X: 2, Y: -3}, {X: 3, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}}},
	{Char: 'T', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 2, Y: -6}, brk, {X: 1, Y: -6}, {X: 1, Y: 0}}},
	{Char: 'U', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -6}}},
	{Char: 'V', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: -3}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -3}, {X: 3, Y: -6}}},
	{Char: 'W', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, {X: 1, Y: -2}, {X: 2, Y: -2}, {X: 3, Y: 0}, {X: 3, Y: -6}}},
	{Char: 'X', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 3, Y: 0}, brk, {X: 3, Y: -6}, {X: 0, Y: 0}}},
	{Char: 'Y', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 1, Y: -3}, {X: 2, Y: -6}, brk, {X: 1, Y: -3}, {X: 1, Y: 0}}},
	{Char: 'Z', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 3, Y: -6}, {X: 0, Y: 0}, {X: 3, Y: 0}}},

	{Char: '[', Points: []vecfont.Point{{X: 2, Y: -6}, {X: 0, Y: -6}, {X: 0, Y: 0}, {X: 2, Y: 0}}},
	{Char: '\\', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 3, Y: 0}}},
	{Char: ']', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 2, Y: -6}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: '^', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 1, Y: -6}, {X: 2, Y: -4}}},
	{Char: '_', Points: []vecfont.Point{{X: 0, Y: 1}, {X: 3, Y: 1}}},
	{Char: '`', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 2, Y: -5}}},

	{Char: 'a', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 3, Y: -4}, {X: 3, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: -2}, {X: 3, Y: -2}}},
	{Char: 'b', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -3}, {X: 2, Y: -4}, {X: 0, Y: -4}}},
	{Char: 'c', Points: []vecfont.Point{{X: 3, Y: -4}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 3, Y: 0}}},
	{Char: 'd', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 3, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -3}, {X: 1, Y: -4}, {X: 3, Y: -4}}},
	{Char: 'e', Points: []vecfont.Point{{X: 0, Y: -2}, {X: 3, Y: -2}, {X: 3, Y: -3}, {X: 2, Y: -4}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 3, Y: 0}}},
	{Char: 'f', Points: []vecfont.Point{{X: 3, Y: -6}, {X: 2, Y: -6}, {X: 1, Y: -5}, {X: 1, Y: 0}, brk, {X: 0, Y: -4}, {X: 2, Y: -4}}},
	{Char: 'g', Points: []vecfont.Point{{X: 3, Y: -4}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 3, Y: 0}, brk, {X: 3, Y: -4}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}}},
	{Char: 'h', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, brk, {X: 0, Y: -3}, {X: 1, Y: -4}, {X: 2, Y: -4}, {X: 3, Y: -3}, {X: 3, Y: 0}}},
	{Char: 'i', Points: []vecfont.Point{{X: 1, Y: -4}, {X: 1, Y: 0}, brk, {X: 1, Y: -6}, {X: 1, Y: -5}}},
	{Char: 'j', Points: []vecfont.Point{{X: 2, Y: -4}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}, brk, {X: 2, Y: -6}, {X: 2, Y: -5}}},
	{Char: 'k', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 0, Y: 0}, brk, {X: 3, Y: -4}, {X: 0, Y: -2}, {X: 3, Y: 0}}},
	{Char: 'l', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: -1}, {X: 2, Y: 0}}},
	{Char: 'm', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -4}, brk, {X: 0, Y: -3}, {X: 1, Y: -4}, {X: 1, Y: 0}, brk, {X: 1, Y: -3}, {X: 2, Y: -4}, {X: 3, Y: -3}, {X: 3, Y: 0}}},
	{Char: 'n', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -4}, brk, {X: 0, Y: -3}, {X: 1, Y: -4}, {X: 2, Y: -4}, {X: 3, Y: -3}, {X: 3, Y: 0}}},
	{Char: 'o', Points: []vecfont.Point{{X: 1, Y: -4}, {X: 2, Y: -4}, {X: 3, Y: -3}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -3}, {X: 1, Y: -4}}},
	{Char: 'p', Points: []vecfont.Point{{X: 0, Y: 2}, {X: 0, Y: -4}, {X: 2, Y: -4}, {X: 3, Y: -3}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: 'q', Points: []vecfont.Point{{X: 3, Y: 2}, {X: 3, Y: -4}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 3, Y: 0}}},
	{Char: 'r', Points: []vecfont.Point{{X: 0, Y: 0}, {X: 0, Y: -4}, brk, {X: 0, Y: -2}, {X: 2, Y: -4}, {X: 3, Y: -4}}},
	{Char: 's', Points: []vecfont.Point{{X: 3, Y: -4}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 1, Y: -2}, {X: 2, Y: -2}, {X: 3, Y: -1}, {X: 2, Y: 0}, {X: 0, Y: 0}}},
	{Char: 't', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: -1}, {X: 2, Y: 0}, {X: 3, Y: 0}, brk, {X: 0, Y: -4}, {X: 2, Y: -4}}},
	{Char: 'u', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -1}, brk, {X: 3, Y: -4}, {X: 3, Y: 0}}},
	{Char: 'v', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: -4}}},
	{Char: 'w', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 0, Y: 0}, {X: 1, Y: -2}, {X: 2, Y: -2}, {X: 3, Y: 0}, {X: 3, Y: -4}}},
	{Char: 'x', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 3, Y: 0}, brk, {X: 3, Y: -4}, {X: 0, Y: 0}}},
	{Char: 'y', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 3, Y: 0}, brk, {X: 3, Y: -4}, {X: 3, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}}},
	{Char: 'z', Points: []vecfont.Point{{X: 0, Y: -4}, {X: 3, Y: -4}, {X: 0, Y: 0}, {X: 3, Y: 0}}},

	{Char: '{', Points: []vecfont.Point{{X: 2, Y: -6}, {X: 1, Y: -5}, {X: 1, Y: -4}, {X: 0, Y: -3}, {X: 1, Y: -2}, {X: 1, Y: -1}, {X: 2, Y: 0}}},
	{Char: '|', Points: []vecfont.Point{{X: 1, Y: -6}, {X: 1, Y: 1}}},
	{Char: '}', Points: []vecfont.Point{{X: 0, Y: -6}, {X: 1, Y: -5}, {X: 1, Y: -4}, {X: 2, Y: -3}, {X: 1, Y: -2}, {X: 1, Y: -1}, {X: 0, Y: 0}}},
	{Char: '~', Points: []vecfont.Point{{X: 0, Y: -3}, {X: 1, Y: -4}, {X: 2, Y: -3}, {X: 3, Y: -4}}},
}
