package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffpreview"
)

// StyleFromPalette maps chroma token types to palette colors. Keywords are
// bold; token types without a palette slot get the zero Style.
func StyleFromPalette(p diffpreview.Palette) StyleFunc {
	return func(tt chromalib.TokenType) diffpreview.Style {
		switch tt {
		case chromalib.KeywordType:
			return diffpreview.Style{Foreground: string(p.Type), Bold: true}

		// Declared types and namespaces read as types in C# and VB.
		case chromalib.NameClass, chromalib.NameNamespace:
			return diffpreview.Style{Foreground: string(p.Type)}

		// Keywords
		case chromalib.Keyword, chromalib.KeywordConstant, chromalib.KeywordDeclaration,
			chromalib.KeywordNamespace, chromalib.KeywordPseudo, chromalib.KeywordReserved:
			return diffpreview.Style{Foreground: string(p.Keyword), Bold: true}

		// Comments
		case chromalib.Comment, chromalib.CommentHashbang, chromalib.CommentMultiline,
			chromalib.CommentPreproc, chromalib.CommentPreprocFile, chromalib.CommentSingle,
			chromalib.CommentSpecial:
			return diffpreview.Style{Foreground: string(p.Comment)}

		// Strings
		case chromalib.String, chromalib.StringAffix, chromalib.StringBacktick, chromalib.StringChar,
			chromalib.StringDelimiter, chromalib.StringDoc, chromalib.StringDouble,
			chromalib.StringEscape, chromalib.StringHeredoc, chromalib.StringInterpol,
			chromalib.StringOther, chromalib.StringRegex, chromalib.StringSingle,
			chromalib.StringSymbol:
			return diffpreview.Style{Foreground: string(p.String)}

		// Numbers
		case chromalib.Number, chromalib.NumberBin, chromalib.NumberFloat, chromalib.NumberHex,
			chromalib.NumberInteger, chromalib.NumberIntegerLong, chromalib.NumberOct:
			return diffpreview.Style{Foreground: string(p.Number)}

		case chromalib.Operator, chromalib.OperatorWord:
			return diffpreview.Style{Foreground: string(p.Operator)}

		case chromalib.NameFunction, chromalib.NameFunctionMagic:
			return diffpreview.Style{Foreground: string(p.Function)}

		case chromalib.NameConstant, chromalib.NameAttribute:
			return diffpreview.Style{Foreground: string(p.Constant)}

		case chromalib.Punctuation:
			return diffpreview.Style{Foreground: string(p.Punctuation)}

		default:
			return diffpreview.Style{}
		}
	}
}
