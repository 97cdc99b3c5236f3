package cpt

import "fmt"

// Name returns the canonical short label for cp (e.g. "Ka" for U+0915,
// "Anusvara" for U+0902), falling back to "U+<hex>" for any codepoint
// outside the tabulated Indic and Myanmar ranges.
func Name(cp rune) string {
	if name, ok := nameLookup(cp); ok {
		return name
	}
	return fmt.Sprintf("U+%04X", cp)
}

func nameLookup(cp rune) (string, bool) {
	switch cp {
	case 0x00A0:
		return "No-break space", true
	case 0x00B2:
		return "Superscript Two (used in Tamil)", true
	case 0x00B3:
		return "Superscript Three (used in Tamil)", true
	case 0x0900:
		return "Inverted Candrabindu", true
	case 0x0901:
		return "Candrabindu", true
	case 0x0902:
		return "Anusvara", true
	case 0x0903:
		return "Visarga", true
	case 0x0904:
		return "Short A", true
	case 0x0905:
		return "A", true
	case 0x0906:
		return "Aa", true
	case 0x0907:
		return "I", true
	case 0x0908:
		return "Ii", true
	case 0x0909:
		return "U", true
	case 0x090A:
		return "Uu", true
	case 0x090B:
		return "Vocalic R", true
	case 0x090C:
		return "Vocalic L", true
	case 0x090D:
		return "Candra E", true
	case 0x090E:
		return "Short E", true
	case 0x090F:
		return "E", true
	case 0x0910:
		return "Ai", true
	case 0x0911:
		return "Candra O", true
	case 0x0912:
		return "Short O", true
	case 0x0913:
		return "O", true
	case 0x0914:
		return "Au", true
	case 0x0915:
		return "Ka", true
	case 0x0916:
		return "Kha", true
	case 0x0917:
		return "Ga", true
	case 0x0918:
		return "Gha", true
	case 0x0919:
		return "Nga", true
	case 0x091A:
		return "Ca", true
	case 0x091B:
		return "Cha", true
	case 0x091C:
		return "Ja", true
	case 0x091D:
		return "Jha", true
	case 0x091E:
		return "Nya", true
	case 0x091F:
		return "Tta", true
	case 0x0920:
		return "Ttha", true
	case 0x0921:
		return "Dda", true
	case 0x0922:
		return "Ddha", true
	case 0x0923:
		return "Nna", true
	case 0x0924:
		return "Ta", true
	case 0x0925:
		return "Tha", true
	case 0x0926:
		return "Da", true
	case 0x0927:
		return "Dha", true
	case 0x0928:
		return "Na", true
	case 0x0929:
		return "Nnna", true
	case 0x092A:
		return "Pa", true
	case 0x092B:
		return "Pha", true
	case 0x092C:
		return "Ba", true
	case 0x092D:
		return "Bha", true
	case 0x092E:
		return "Ma", true
	case 0x092F:
		return "Ya", true
	case 0x0930:
		return "Ra", true
	case 0x0931:
		return "Rra", true
	case 0x0932:
		return "La", true
	case 0x0933:
		return "Lla", true
	case 0x0934:
		return "Llla", true
	case 0x0935:
		return "Va", true
	case 0x0936:
		return "Sha", true
	case 0x0937:
		return "Ssa", true
	case 0x0938:
		return "Sa", true
	case 0x0939:
		return "Ha", true
	case 0x093A:
		return "Sign Oe", true
	case 0x093B:
		return "Sign Ooe", true
	case 0x093C:
		return "Nukta", true
	case 0x093D:
		return "Avagraha", true
	case 0x093E:
		return "Sign Aa", true
	case 0x093F:
		return "Sign I", true
	case 0x0940:
		return "Sign Ii", true
	case 0x0941:
		return "Sign U", true
	case 0x0942:
		return "Sign Uu", true
	case 0x0943:
		return "Sign Vocalic R", true
	case 0x0944:
		return "Sign Vocalic Rr", true
	case 0x0945:
		return "Sign Candra E", true
	case 0x0946:
		return "Sign Short E", true
	case 0x0947:
		return "Sign E", true
	case 0x0948:
		return "Sign Ai", true
	case 0x0949:
		return "Sign Candra O", true
	case 0x094A:
		return "Sign Short O", true
	case 0x094B:
		return "Sign O", true
	case 0x094C:
		return "Sign Au", true
	case 0x094D:
		return "Virama", true
	case 0x094E:
		return "Sign Prishthamatra E", true
	case 0x094F:
		return "Sign Aw", true
	case 0x0950:
		return "Om", true
	case 0x0951:
		return "Udatta", true
	case 0x0952:
		return "Anudatta", true
	case 0x0953:
		return "Grave accent", true
	case 0x0954:
		return "Acute accent", true
	case 0x0955:
		return "Sign Candra Long E", true
	case 0x0956:
		return "Sign Ue", true
	case 0x0957:
		return "Sign Uue", true
	case 0x0958:
		return "Qa", true
	case 0x0959:
		return "Khha", true
	case 0x095A:
		return "Ghha", true
	case 0x095B:
		return "Za", true
	case 0x095C:
		return "Dddha", true
	case 0x095D:
		return "Rha", true
	case 0x095E:
		return "Fa", true
	case 0x095F:
		return "Yya", true
	case 0x0960:
		return "Vocalic Rr", true
	case 0x0961:
		return "Vocalic Ll", true
	case 0x0962:
		return "Sign Vocalic L", true
	case 0x0963:
		return "Sign Vocalic Ll", true
	case 0x0964:
		return "Danda", true
	case 0x0965:
		return "Double Danda", true
	case 0x0966:
		return "Digit Zero", true
	case 0x0967:
		return "Digit One", true
	case 0x0968:
		return "Digit Two", true
	case 0x0969:
		return "Digit Three", true
	case 0x096A:
		return "Digit Four", true
	case 0x096B:
		return "Digit Five", true
	case 0x096C:
		return "Digit Six", true
	case 0x096D:
		return "Digit Seven", true
	case 0x096E:
		return "Digit Eight", true
	case 0x096F:
		return "Digit Nine", true
	case 0x0970:
		return "Abbreviation Sign", true
	case 0x0971:
		return "Sign High Spacing Dot", true
	case 0x0972:
		return "Candra Aa", true
	case 0x0973:
		return "Oe", true
	case 0x0974:
		return "Ooe", true
	case 0x0975:
		return "Aw", true
	case 0x0976:
		return "Ue", true
	case 0x0977:
		return "Uue", true
	case 0x0978:
		return "Marwari Dda", true
	case 0x0979:
		return "Zha", true
	case 0x097A:
		return "Heavy Ya", true
	case 0x097B:
		return "Gga", true
	case 0x097C:
		return "Jja", true
	case 0x097D:
		return "Glottal Stop", true
	case 0x097E:
		return "Ddda", true
	case 0x097F:
		return "Bba", true
	case 0x0980:
		return "Anji", true
	case 0x0981:
		return "Candrabindu", true
	case 0x0982:
		return "Anusvara", true
	case 0x0983:
		return "Visarga", true
	case 0x0984:
		return "unassigned", true
	case 0x0985:
		return "A", true
	case 0x0986:
		return "Aa", true
	case 0x0987:
		return "I", true
	case 0x0988:
		return "Ii", true
	case 0x0989:
		return "U", true
	case 0x098A:
		return "Uu", true
	case 0x098B:
		return "Vocalic R", true
	case 0x098C:
		return "Vocalic L", true
	case 0x098D:
		return "unassigned", true
	case 0x098E:
		return "unassigned", true
	case 0x098F:
		return "E", true
	case 0x0990:
		return "Ai", true
	case 0x0991:
		return "unassigned", true
	case 0x0992:
		return "unassigned", true
	case 0x0993:
		return "O", true
	case 0x0994:
		return "Au", true
	case 0x0995:
		return "Ka", true
	case 0x0996:
		return "Kha", true
	case 0x0997:
		return "Ga", true
	case 0x0998:
		return "Gha", true
	case 0x0999:
		return "Nga", true
	case 0x099A:
		return "Ca", true
	case 0x099B:
		return "Cha", true
	case 0x099C:
		return "Ja", true
	case 0x099D:
		return "Jha", true
	case 0x099E:
		return "Nya", true
	case 0x099F:
		return "Tta", true
	case 0x09A0:
		return "Ttha", true
	case 0x09A1:
		return "Dda", true
	case 0x09A2:
		return "Ddha", true
	case 0x09A3:
		return "Nna", true
	case 0x09A4:
		return "Ta", true
	case 0x09A5:
		return "Tha", true
	case 0x09A6:
		return "Da", true
	case 0x09A7:
		return "Dha", true
	case 0x09A8:
		return "Na", true
	case 0x09A9:
		return "unassigned", true
	case 0x09AA:
		return "Pa", true
	case 0x09AB:
		return "Pha", true
	case 0x09AC:
		return "Ba", true
	case 0x09AD:
		return "Bha", true
	case 0x09AE:
		return "Ma", true
	case 0x09AF:
		return "Ya", true
	case 0x09B0:
		return "Ra", true
	case 0x09B1:
		return "unassigned", true
	case 0x09B2:
		return "La", true
	case 0x09B3:
		return "unassigned", true
	case 0x09B4:
		return "unassigned", true
	case 0x09B5:
		return "unassigned", true
	case 0x09B6:
		return "Sha", true
	case 0x09B7:
		return "Ssa", true
	case 0x09B8:
		return "Sa", true
	case 0x09B9:
		return "Ha", true
	case 0x09BA:
		return "unassigned", true
	case 0x09BB:
		return "unassigned", true
	case 0x09BC:
		return "Nukta", true
	case 0x09BD:
		return "Avagraha", true
	case 0x09BE:
		return "Sign Aa", true
	case 0x09BF:
		return "Sign I", true
	case 0x09C0:
		return "Sign Ii", true
	case 0x09C1:
		return "Sign U", true
	case 0x09C2:
		return "Sign Uu", true
	case 0x09C3:
		return "Sign Vocalic R", true
	case 0x09C4:
		return "Sign Vocalic Rr", true
	case 0x09C5:
		return "unassigned", true
	case 0x09C6:
		return "unassigned", true
	case 0x09C7:
		return "Sign E", true
	case 0x09C8:
		return "Sign Ai", true
	case 0x09C9:
		return "unassigned", true
	case 0x09CA:
		return "unassigned", true
	case 0x09CB:
		return "Sign O", true
	case 0x09CC:
		return "Sign Au", true
	case 0x09CD:
		return "Virama", true
	case 0x09CE:
		return "Khanda Ta", true
	case 0x09CF:
		return "unassigned", true
	case 0x09D0:
		return "unassigned", true
	case 0x09D1:
		return "unassigned", true
	case 0x09D2:
		return "unassigned", true
	case 0x09D3:
		return "unassigned", true
	case 0x09D4:
		return "unassigned", true
	case 0x09D5:
		return "unassigned", true
	case 0x09D6:
		return "unassigned", true
	case 0x09D7:
		return "Au Length Mark", true
	case 0x09D8:
		return "unassigned", true
	case 0x09D9:
		return "unassigned", true
	case 0x09DA:
		return "unassigned", true
	case 0x09DB:
		return "unassigned", true
	case 0x09DC:
		return "Rra", true
	case 0x09DD:
		return "Rha", true
	case 0x09DE:
		return "unassigned", true
	case 0x09DF:
		return "Yya", true
	case 0x09E0:
		return "Vocalic Rr", true
	case 0x09E1:
		return "Vocalic Ll", true
	case 0x09E2:
		return "Sign Vocalic L", true
	case 0x09E3:
		return "Sign Vocalic Ll", true
	case 0x09E4:
		return "unassigned", true
	case 0x09E5:
		return "unassigned", true
	case 0x09E6:
		return "Digit Zero", true
	case 0x09E7:
		return "Digit One", true
	case 0x09E8:
		return "Digit Two", true
	case 0x09E9:
		return "Digit Three", true
	case 0x09EA:
		return "Digit Four", true
	case 0x09EB:
		return "Digit Five", true
	case 0x09EC:
		return "Digit Six", true
	case 0x09ED:
		return "Digit Seven", true
	case 0x09EE:
		return "Digit Eight", true
	case 0x09EF:
		return "Digit Nine", true
	case 0x09F0:
		return "Assamese Ra", true
	case 0x09F1:
		return "Assamese Wa", true
	case 0x09F2:
		return "Rupee Mark", true
	case 0x09F3:
		return "Rupee Sign", true
	case 0x09F4:
		return "Numerator One", true
	case 0x09F5:
		return "Numerator Two", true
	case 0x09F6:
		return "Numerator Three", true
	case 0x09F7:
		return "Numerator Four", true
	case 0x09F8:
		return "Numerator One Less Than Denominator", true
	case 0x09F9:
		return "Denominator Sixteen", true
	case 0x09FA:
		return "Isshar", true
	case 0x09FB:
		return "Ganda Mark", true
	case 0x09FC:
		return "Vedic Anusvara", true
	case 0x09FD:
		return "Abbreviation Sign", true
	case 0x0A00:
		return "unassigned", true
	case 0x0A01:
		return "Adak Bindi", true
	case 0x0A02:
		return "Bindi", true
	case 0x0A03:
		return "Visarga", true
	case 0x0A04:
		return "unassigned", true
	case 0x0A05:
		return "A", true
	case 0x0A06:
		return "Aa", true
	case 0x0A07:
		return "I", true
	case 0x0A08:
		return "Ii", true
	case 0x0A09:
		return "U", true
	case 0x0A0A:
		return "Uu", true
	case 0x0A0B:
		return "unassigned", true
	case 0x0A0C:
		return "unassigned", true
	case 0x0A0D:
		return "unassigned", true
	case 0x0A0E:
		return "unassigned", true
	case 0x0A0F:
		return "Ee", true
	case 0x0A10:
		return "Ai", true
	case 0x0A11:
		return "unassigned", true
	case 0x0A12:
		return "unassigned", true
	case 0x0A13:
		return "Oo", true
	case 0x0A14:
		return "Au", true
	case 0x0A15:
		return "Ka", true
	case 0x0A16:
		return "Kha", true
	case 0x0A17:
		return "Ga", true
	case 0x0A18:
		return "Gha", true
	case 0x0A19:
		return "Nga", true
	case 0x0A1A:
		return "Ca", true
	case 0x0A1B:
		return "Cha", true
	case 0x0A1C:
		return "Ja", true
	case 0x0A1D:
		return "Jha", true
	case 0x0A1E:
		return "Nya", true
	case 0x0A1F:
		return "Tta", true
	case 0x0A20:
		return "Ttha", true
	case 0x0A21:
		return "Dda", true
	case 0x0A22:
		return "Ddha", true
	case 0x0A23:
		return "Nna", true
	case 0x0A24:
		return "Ta", true
	case 0x0A25:
		return "Tha", true
	case 0x0A26:
		return "Da", true
	case 0x0A27:
		return "Dha", true
	case 0x0A28:
		return "Na", true
	case 0x0A29:
		return "unassigned", true
	case 0x0A2A:
		return "Pa", true
	case 0x0A2B:
		return "Pha", true
	case 0x0A2C:
		return "Ba", true
	case 0x0A2D:
		return "Bha", true
	case 0x0A2E:
		return "Ma", true
	case 0x0A2F:
		return "Ya", true
	case 0x0A30:
		return "Ra", true
	case 0x0A31:
		return "unassigned", true
	case 0x0A32:
		return "La", true
	case 0x0A33:
		return "Lla", true
	case 0x0A34:
		return "unassigned", true
	case 0x0A35:
		return "Va", true
	case 0x0A36:
		return "Sha", true
	case 0x0A37:
		return "unassigned", true
	case 0x0A38:
		return "Sa", true
	case 0x0A39:
		return "Ha", true
	case 0x0A3A:
		return "unassigned", true
	case 0x0A3B:
		return "unassigned", true
	case 0x0A3C:
		return "Nukta", true
	case 0x0A3D:
		return "unassigned", true
	case 0x0A3E:
		return "Sign Aa", true
	case 0x0A3F:
		return "Sign I", true
	case 0x0A40:
		return "Sign Ii", true
	case 0x0A41:
		return "Sign U", true
	case 0x0A42:
		return "Sign Uu", true
	case 0x0A43:
		return "unassigned", true
	case 0x0A44:
		return "unassigned", true
	case 0x0A45:
		return "unassigned", true
	case 0x0A46:
		return "unassigned", true
	case 0x0A47:
		return "Sign Ee", true
	case 0x0A48:
		return "Sign Ai", true
	case 0x0A49:
		return "unassigned", true
	case 0x0A4A:
		return "unassigned", true
	case 0x0A4B:
		return "Sign Oo", true
	case 0x0A4C:
		return "Sign Au", true
	case 0x0A4D:
		return "Virama", true
	case 0x0A4E:
		return "unassigned", true
	case 0x0A4F:
		return "unassigned", true
	case 0x0A50:
		return "unassigned", true
	case 0x0A51:
		return "Udaat", true
	case 0x0A52:
		return "unassigned", true
	case 0x0A53:
		return "unassigned", true
	case 0x0A54:
		return "unassigned", true
	case 0x0A55:
		return "unassigned", true
	case 0x0A56:
		return "unassigned", true
	case 0x0A57:
		return "unassigned", true
	case 0x0A58:
		return "unassigned", true
	case 0x0A59:
		return "Khha", true
	case 0x0A5A:
		return "Ghha", true
	case 0x0A5B:
		return "Za", true
	case 0x0A5C:
		return "Rra", true
	case 0x0A5D:
		return "unassigned", true
	case 0x0A5E:
		return "Fa", true
	case 0x0A5F:
		return "unassigned", true
	case 0x0A60:
		return "unassigned", true
	case 0x0A61:
		return "unassigned", true
	case 0x0A62:
		return "unassigned", true
	case 0x0A63:
		return "unassigned", true
	case 0x0A64:
		return "unassigned", true
	case 0x0A65:
		return "unassigned", true
	case 0x0A66:
		return "Digit Zero", true
	case 0x0A67:
		return "Digit One", true
	case 0x0A68:
		return "Digit Two", true
	case 0x0A69:
		return "Digit Three", true
	case 0x0A6A:
		return "Digit Four", true
	case 0x0A6B:
		return "Digit Five", true
	case 0x0A6C:
		return "Digit Six", true
	case 0x0A6D:
		return "Digit Seven", true
	case 0x0A6E:
		return "Digit Eight", true
	case 0x0A6F:
		return "Digit Nine", true
	case 0x0A70:
		return "Tippi", true
	case 0x0A71:
		return "Addak", true
	case 0x0A72:
		return "Iri", true
	case 0x0A73:
		return "Ura", true
	case 0x0A74:
		return "Ek Onkar", true
	case 0x0A75:
		return "Yakash", true
	case 0x0A81:
		return "Candrabindu", true
	case 0x0A82:
		return "Anusvara", true
	case 0x0A83:
		return "Visarga", true
	case 0x0A84:
		return "unassigned", true
	case 0x0A85:
		return "A", true
	case 0x0A86:
		return "Aa", true
	case 0x0A87:
		return "I", true
	case 0x0A88:
		return "Ii", true
	case 0x0A89:
		return "U", true
	case 0x0A8A:
		return "Uu", true
	case 0x0A8B:
		return "Vocalic R", true
	case 0x0A8C:
		return "Vocalic L", true
	case 0x0A8D:
		return "Candra E", true
	case 0x0A8E:
		return "unassigned", true
	case 0x0A8F:
		return "E", true
	case 0x0A90:
		return "Ai", true
	case 0x0A91:
		return "Candra O", true
	case 0x0A92:
		return "unassigned", true
	case 0x0A93:
		return "O", true
	case 0x0A94:
		return "Au", true
	case 0x0A95:
		return "Ka", true
	case 0x0A96:
		return "Kha", true
	case 0x0A97:
		return "Ga", true
	case 0x0A98:
		return "Gha", true
	case 0x0A99:
		return "Nga", true
	case 0x0A9A:
		return "Ca", true
	case 0x0A9B:
		return "Cha", true
	case 0x0A9C:
		return "Ja", true
	case 0x0A9D:
		return "Jha", true
	case 0x0A9E:
		return "Nya", true
	case 0x0A9F:
		return "Tta", true
	case 0x0AA0:
		return "Ttha", true
	case 0x0AA1:
		return "Dda", true
	case 0x0AA2:
		return "Ddha", true
	case 0x0AA3:
		return "Nna", true
	case 0x0AA4:
		return "Ta", true
	case 0x0AA5:
		return "Tha", true
	case 0x0AA6:
		return "Da", true
	case 0x0AA7:
		return "Dha", true
	case 0x0AA8:
		return "Na", true
	case 0x0AA9:
		return "unassigned", true
	case 0x0AAA:
		return "Pa", true
	case 0x0AAB:
		return "Pha", true
	case 0x0AAC:
		return "Ba", true
	case 0x0AAD:
		return "Bha", true
	case 0x0AAE:
		return "Ma", true
	case 0x0AAF:
		return "Ya", true
	case 0x0AB0:
		return "Ra", true
	case 0x0AB1:
		return "unassigned", true
	case 0x0AB2:
		return "La", true
	case 0x0AB3:
		return "Lla", true
	case 0x0AB4:
		return "unassigned", true
	case 0x0AB5:
		return "Va", true
	case 0x0AB6:
		return "Sha", true
	case 0x0AB7:
		return "Ssa", true
	case 0x0AB8:
		return "Sa", true
	case 0x0AB9:
		return "Ha", true
	case 0x0ABA:
		return "unassigned", true
	case 0x0ABB:
		return "unassigned", true
	case 0x0ABC:
		return "Nukta", true
	case 0x0ABD:
		return "Avagraha", true
	case 0x0ABE:
		return "Sign Aa", true
	case 0x0ABF:
		return "Sign I", true
	case 0x0AC0:
		return "Sign Ii", true
	case 0x0AC1:
		return "Sign U", true
	case 0x0AC2:
		return "Sign Uu", true
	case 0x0AC3:
		return "Sign Vocalic R", true
	case 0x0AC4:
		return "Sign Vocalic Rr", true
	case 0x0AC5:
		return "Sign Candra E", true
	case 0x0AC6:
		return "unassigned", true
	case 0x0AC7:
		return "Sign E", true
	case 0x0AC8:
		return "Sign Ai", true
	case 0x0AC9:
		return "Sign Candra O", true
	case 0x0ACA:
		return "unassigned", true
	case 0x0ACB:
		return "Sign O", true
	case 0x0ACC:
		return "Sign Au", true
	case 0x0ACD:
		return "Virama", true
	case 0x0ACE:
		return "unassigned", true
	case 0x0ACF:
		return "unassigned", true
	case 0x0AD0:
		return "Om", true
	case 0x0AD1:
		return "unassigned", true
	case 0x0AD2:
		return "unassigned", true
	case 0x0AD3:
		return "unassigned", true
	case 0x0AD4:
		return "unassigned", true
	case 0x0AD5:
		return "unassigned", true
	case 0x0AD6:
		return "unassigned", true
	case 0x0AD7:
		return "unassigned", true
	case 0x0AD8:
		return "unassigned", true
	case 0x0AD9:
		return "unassigned", true
	case 0x0ADA:
		return "unassigned", true
	case 0x0ADB:
		return "unassigned", true
	case 0x0ADC:
		return "unassigned", true
	case 0x0ADD:
		return "unassigned", true
	case 0x0ADE:
		return "unassigned", true
	case 0x0ADF:
		return "unassigned", true
	case 0x0AE0:
		return "Vocalic Rr", true
	case 0x0AE1:
		return "Vocalic Ll", true
	case 0x0AE2:
		return "Sign Vocalic L", true
	case 0x0AE3:
		return "Sign Vocalic Ll", true
	case 0x0AE4:
		return "unassigned", true
	case 0x0AE5:
		return "unassigned", true
	case 0x0AE6:
		return "Digit Zero", true
	case 0x0AE7:
		return "Digit One", true
	case 0x0AE8:
		return "Digit Two", true
	case 0x0AE9:
		return "Digit Three", true
	case 0x0AEA:
		return "Digit Four", true
	case 0x0AEB:
		return "Digit Five", true
	case 0x0AEC:
		return "Digit Six", true
	case 0x0AED:
		return "Digit Seven", true
	case 0x0AEE:
		return "Digit Eight", true
	case 0x0AEF:
		return "Digit Nine", true
	case 0x0AF0:
		return "Abbreviation", true
	case 0x0AF1:
		return "Rupee Sign", true
	case 0x0AF2:
		return "unassigned", true
	case 0x0AF3:
		return "unassigned", true
	case 0x0AF4:
		return "unassigned", true
	case 0x0AF5:
		return "unassigned", true
	case 0x0AF6:
		return "unassigned", true
	case 0x0AF7:
		return "unassigned", true
	case 0x0AF8:
		return "unassigned", true
	case 0x0AF9:
		return "Zha", true
	case 0x0AFA:
		return "Sukun", true
	case 0x0AFB:
		return "Shadda", true
	case 0x0AFC:
		return "Maddah", true
	case 0x0AFD:
		return "Three-Dot Nukta Above", true
	case 0x0AFE:
		return "Circle Nukta Above", true
	case 0x0AFF:
		return "Two-Circle Nukta Above", true
	case 0x0B00:
		return "unassigned", true
	case 0x0B01:
		return "Candrabindu", true
	case 0x0B02:
		return "Anusvara", true
	case 0x0B03:
		return "Visarga", true
	case 0x0B04:
		return "unassigned", true
	case 0x0B05:
		return "A", true
	case 0x0B06:
		return "Aa", true
	case 0x0B07:
		return "I", true
	case 0x0B08:
		return "Ii", true
	case 0x0B09:
		return "U", true
	case 0x0B0A:
		return "Uu", true
	case 0x0B0B:
		return "Vocalic R", true
	case 0x0B0C:
		return "Vocalic L", true
	case 0x0B0D:
		return "unassigned", true
	case 0x0B0E:
		return "unassigned", true
	case 0x0B0F:
		return "E", true
	case 0x0B10:
		return "Ai", true
	case 0x0B11:
		return "unassigned", true
	case 0x0B12:
		return "unassigned", true
	case 0x0B13:
		return "O", true
	case 0x0B14:
		return "Au", true
	case 0x0B15:
		return "Ka", true
	case 0x0B16:
		return "Kha", true
	case 0x0B17:
		return "Ga", true
	case 0x0B18:
		return "Gha", true
	case 0x0B19:
		return "Nga", true
	case 0x0B1A:
		return "Ca", true
	case 0x0B1B:
		return "Cha", true
	case 0x0B1C:
		return "Ja", true
	case 0x0B1D:
		return "Jha", true
	case 0x0B1E:
		return "Nya", true
	case 0x0B1F:
		return "Tta", true
	case 0x0B20:
		return "Ttha", true
	case 0x0B21:
		return "Dda", true
	case 0x0B22:
		return "Ddha", true
	case 0x0B23:
		return "Nna", true
	case 0x0B24:
		return "Ta", true
	case 0x0B25:
		return "Tha", true
	case 0x0B26:
		return "Da", true
	case 0x0B27:
		return "Dha", true
	case 0x0B28:
		return "Na", true
	case 0x0B29:
		return "unassigned", true
	case 0x0B2A:
		return "Pa", true
	case 0x0B2B:
		return "Pha", true
	case 0x0B2C:
		return "Ba", true
	case 0x0B2D:
		return "Bha", true
	case 0x0B2E:
		return "Ma", true
	case 0x0B2F:
		return "Ya", true
	case 0x0B30:
		return "Ra", true
	case 0x0B31:
		return "unassigned", true
	case 0x0B32:
		return "La", true
	case 0x0B33:
		return "Lla", true
	case 0x0B34:
		return "unassigned", true
	case 0x0B35:
		return "Va", true
	case 0x0B36:
		return "Sha", true
	case 0x0B37:
		return "Ssa", true
	case 0x0B38:
		return "Sa", true
	case 0x0B39:
		return "Ha", true
	case 0x0B3A:
		return "unassigned", true
	case 0x0B3B:
		return "unassigned", true
	case 0x0B3C:
		return "Nukta", true
	case 0x0B3D:
		return "Avagraha", true
	case 0x0B3E:
		return "Sign Aa", true
	case 0x0B3F:
		return "Sign I", true
	case 0x0B40:
		return "Sign Ii", true
	case 0x0B41:
		return "Sign U", true
	case 0x0B42:
		return "Sign Uu", true
	case 0x0B43:
		return "Sign Vocalic R", true
	case 0x0B44:
		return "Sign Vocalic Rr", true
	case 0x0B45:
		return "unassigned", true
	case 0x0B46:
		return "unassigned", true
	case 0x0B47:
		return "Sign E", true
	case 0x0B48:
		return "Sign Ai", true
	case 0x0B49:
		return "unassigned", true
	case 0x0B4A:
		return "unassigned", true
	case 0x0B4B:
		return "Sign O", true
	case 0x0B4C:
		return "Sign Au", true
	case 0x0B4D:
		return "Virama", true
	case 0x0B4E:
		return "unassigned", true
	case 0x0B4F:
		return "unassigned", true
	case 0x0B50:
		return "unassigned", true
	case 0x0B51:
		return "unassigned", true
	case 0x0B52:
		return "unassigned", true
	case 0x0B53:
		return "unassigned", true
	case 0x0B54:
		return "unassigned", true
	case 0x0B55:
		return "unassigned", true
	case 0x0B56:
		return "Ai Length Mark", true
	case 0x0B57:
		return "Au Length Mark", true
	case 0x0B58:
		return "unassigned", true
	case 0x0B59:
		return "unassigned", true
	case 0x0B5A:
		return "unassigned", true
	case 0x0B5B:
		return "unassigned", true
	case 0x0B5C:
		return "Rra", true
	case 0x0B5D:
		return "Rha", true
	case 0x0B5E:
		return "unassigned", true
	case 0x0B5F:
		return "Yya", true
	case 0x0B60:
		return "Vocalic Rr", true
	case 0x0B61:
		return "Vocalic Ll", true
	case 0x0B62:
		return "Sign Vocalic L", true
	case 0x0B63:
		return "Sign Vocalic Ll", true
	case 0x0B64:
		return "unassigned", true
	case 0x0B65:
		return "unassigned", true
	case 0x0B66:
		return "Digit Zero", true
	case 0x0B67:
		return "Digit One", true
	case 0x0B68:
		return "Digit Two", true
	case 0x0B69:
		return "Digit Three", true
	case 0x0B6A:
		return "Digit Four", true
	case 0x0B6B:
		return "Digit Five", true
	case 0x0B6C:
		return "Digit Six", true
	case 0x0B6D:
		return "Digit Seven", true
	case 0x0B6E:
		return "Digit Eight", true
	case 0x0B6F:
		return "Digit Nine", true
	case 0x0B70:
		return "Isshar", true
	case 0x0B71:
		return "Wa", true
	case 0x0B72:
		return "Fraction 1/4", true
	case 0x0B73:
		return "Fraction 1/2", true
	case 0x0B74:
		return "Fraction 3/4", true
	case 0x0B75:
		return "Fraction 1/16", true
	case 0x0B76:
		return "Fraction 1/8", true
	case 0x0B77:
		return "Fraction 3/16", true
	case 0x0B78:
		return "unassigned", true
	case 0x0B79:
		return "unassigned", true
	case 0x0B7A:
		return "unassigned", true
	case 0x0B7B:
		return "unassigned", true
	case 0x0B7C:
		return "unassigned", true
	case 0x0B7D:
		return "unassigned", true
	case 0x0B7E:
		return "unassigned", true
	case 0x0B7F:
		return "unassigned", true
	case 0x0B80:
		return "unassigned", true
	case 0x0B81:
		return "unassigned", true
	case 0x0B82:
		return "Anusvara", true
	case 0x0B83:
		return "Visarga", true
	case 0x0B84:
		return "unassigned", true
	case 0x0B85:
		return "A", true
	case 0x0B86:
		return "Aa", true
	case 0x0B87:
		return "I", true
	case 0x0B88:
		return "Ii", true
	case 0x0B89:
		return "U", true
	case 0x0B8A:
		return "Uu", true
	case 0x0B8B:
		return "unassigned", true
	case 0x0B8C:
		return "unassigned", true
	case 0x0B8D:
		return "unassigned", true
	case 0x0B8E:
		return "E", true
	case 0x0B8F:
		return "Ee", true
	case 0x0B90:
		return "Ai", true
	case 0x0B91:
		return "unassigned", true
	case 0x0B92:
		return "O", true
	case 0x0B93:
		return "Oo", true
	case 0x0B94:
		return "Au", true
	case 0x0B95:
		return "Ka", true
	case 0x0B96:
		return "unassigned", true
	case 0x0B97:
		return "unassigned", true
	case 0x0B98:
		return "unassigned", true
	case 0x0B99:
		return "Nga", true
	case 0x0B9A:
		return "Ca", true
	case 0x0B9B:
		return "unassigned", true
	case 0x0B9C:
		return "Ja", true
	case 0x0B9D:
		return "unassigned", true
	case 0x0B9E:
		return "Nya", true
	case 0x0B9F:
		return "Tta", true
	case 0x0BA0:
		return "unassigned", true
	case 0x0BA1:
		return "unassigned", true
	case 0x0BA2:
		return "unassigned", true
	case 0x0BA3:
		return "Nna", true
	case 0x0BA4:
		return "Ta", true
	case 0x0BA5:
		return "unassigned", true
	case 0x0BA6:
		return "unassigned", true
	case 0x0BA7:
		return "unassigned", true
	case 0x0BA8:
		return "Na", true
	case 0x0BA9:
		return "Nnna", true
	case 0x0BAA:
		return "Pa", true
	case 0x0BAB:
		return "unassigned", true
	case 0x0BAC:
		return "unassigned", true
	case 0x0BAD:
		return "unassigned", true
	case 0x0BAE:
		return "Ma", true
	case 0x0BAF:
		return "Ya", true
	case 0x0BB0:
		return "Ra", true
	case 0x0BB1:
		return "Rra", true
	case 0x0BB2:
		return "La", true
	case 0x0BB3:
		return "Lla", true
	case 0x0BB4:
		return "Llla", true
	case 0x0BB5:
		return "Va", true
	case 0x0BB6:
		return "Sha", true
	case 0x0BB7:
		return "Ssa", true
	case 0x0BB8:
		return "Sa", true
	case 0x0BB9:
		return "Ha", true
	case 0x0BBA:
		return "unassigned", true
	case 0x0BBB:
		return "unassigned", true
	case 0x0BBC:
		return "unassigned", true
	case 0x0BBD:
		return "unassigned", true
	case 0x0BBE:
		return "Sign Aa", true
	case 0x0BBF:
		return "Sign I", true
	case 0x0BC0:
		return "Sign Ii", true
	case 0x0BC1:
		return "Sign U", true
	case 0x0BC2:
		return "Sign Uu", true
	case 0x0BC3:
		return "unassigned", true
	case 0x0BC4:
		return "unassigned", true
	case 0x0BC5:
		return "unassigned", true
	case 0x0BC6:
		return "Sign E", true
	case 0x0BC7:
		return "Sign Ee", true
	case 0x0BC8:
		return "Sign Ai", true
	case 0x0BC9:
		return "unassigned", true
	case 0x0BCA:
		return "Sign O", true
	case 0x0BCB:
		return "Sign Oo", true
	case 0x0BCC:
		return "Sign Au", true
	case 0x0BCD:
		return "Virama", true
	case 0x0BCE:
		return "unassigned", true
	case 0x0BCF:
		return "unassigned", true
	case 0x0BD0:
		return "Om", true
	case 0x0BD1:
		return "unassigned", true
	case 0x0BD2:
		return "unassigned", true
	case 0x0BD3:
		return "unassigned", true
	case 0x0BD4:
		return "unassigned", true
	case 0x0BD5:
		return "unassigned", true
	case 0x0BD6:
		return "unassigned", true
	case 0x0BD7:
		return "Au Length Mark", true
	case 0x0BD8:
		return "unassigned", true
	case 0x0BD9:
		return "unassigned", true
	case 0x0BDA:
		return "unassigned", true
	case 0x0BDB:
		return "unassigned", true
	case 0x0BDC:
		return "unassigned", true
	case 0x0BDD:
		return "unassigned", true
	case 0x0BDE:
		return "unassigned", true
	case 0x0BDF:
		return "unassigned", true
	case 0x0BE0:
		return "unassigned", true
	case 0x0BE1:
		return "unassigned", true
	case 0x0BE2:
		return "unassigned", true
	case 0x0BE3:
		return "unassigned", true
	case 0x0BE4:
		return "unassigned", true
	case 0x0BE5:
		return "unassigned", true
	case 0x0BE6:
		return "Digit Zero", true
	case 0x0BE7:
		return "Digit One", true
	case 0x0BE8:
		return "Digit Two", true
	case 0x0BE9:
		return "Digit Three", true
	case 0x0BEA:
		return "Digit Four", true
	case 0x0BEB:
		return "Digit Five", true
	case 0x0BEC:
		return "Digit Six", true
	case 0x0BED:
		return "Digit Seven", true
	case 0x0BEE:
		return "Digit Eight", true
	case 0x0BEF:
		return "Digit Nine", true
	case 0x0BF0:
		return "Number Ten", true
	case 0x0BF1:
		return "Number One Hundred", true
	case 0x0BF2:
		return "Number One Thousand", true
	case 0x0BF3:
		return "Day Sign", true
	case 0x0BF4:
		return "Month Sign", true
	case 0x0BF5:
		return "Year Sign", true
	case 0x0BF6:
		return "Debit Sign", true
	case 0x0BF7:
		return "Credit Sign", true
	case 0x0BF8:
		return "As Above Sign", true
	case 0x0BF9:
		return "Tamil Rupee Sign", true
	case 0x0BFA:
		return "Number Sign", true
	case 0x0C00:
		return "Combining Candrabindu Above", true
	case 0x0C01:
		return "Candrabindu", true
	case 0x0C02:
		return "Anusvara", true
	case 0x0C03:
		return "Visarga", true
	case 0x0C04:
		return "unassigned", true
	case 0x0C05:
		return "A", true
	case 0x0C06:
		return "Aa", true
	case 0x0C07:
		return "I", true
	case 0x0C08:
		return "Ii", true
	case 0x0C09:
		return "U", true
	case 0x0C0A:
		return "Uu", true
	case 0x0C0B:
		return "Vocalic R", true
	case 0x0C0C:
		return "Vocalic L", true
	case 0x0C0D:
		return "unassigned", true
	case 0x0C0E:
		return "E", true
	case 0x0C0F:
		return "Ee", true
	case 0x0C10:
		return "Ai", true
	case 0x0C11:
		return "unassigned", true
	case 0x0C12:
		return "O", true
	case 0x0C13:
		return "Oo", true
	case 0x0C14:
		return "Au", true
	case 0x0C15:
		return "Ka", true
	case 0x0C16:
		return "Kha", true
	case 0x0C17:
		return "Ga", true
	case 0x0C18:
		return "Gha", true
	case 0x0C19:
		return "Nga", true
	case 0x0C1A:
		return "Ca", true
	case 0x0C1B:
		return "Cha", true
	case 0x0C1C:
		return "Ja", true
	case 0x0C1D:
		return "Jha", true
	case 0x0C1E:
		return "Nya", true
	case 0x0C1F:
		return "Tta", true
	case 0x0C20:
		return "Ttha", true
	case 0x0C21:
		return "Dda", true
	case 0x0C22:
		return "Ddha", true
	case 0x0C23:
		return "Nna", true
	case 0x0C24:
		return "Ta", true
	case 0x0C25:
		return "Tha", true
	case 0x0C26:
		return "Da", true
	case 0x0C27:
		return "Dha", true
	case 0x0C28:
		return "Na", true
	case 0x0C29:
		return "unassigned", true
	case 0x0C2A:
		return "Pa", true
	case 0x0C2B:
		return "Pha", true
	case 0x0C2C:
		return "Ba", true
	case 0x0C2D:
		return "Bha", true
	case 0x0C2E:
		return "Ma", true
	case 0x0C2F:
		return "Ya", true
	case 0x0C30:
		return "Ra", true
	case 0x0C31:
		return "Rra", true
	case 0x0C32:
		return "La", true
	case 0x0C33:
		return "Lla", true
	case 0x0C34:
		return "Llla", true
	case 0x0C35:
		return "Va", true
	case 0x0C36:
		return "Sha", true
	case 0x0C37:
		return "Ssa", true
	case 0x0C38:
		return "Sa", true
	case 0x0C39:
		return "Ha", true
	case 0x0C3A:
		return "unassigned", true
	case 0x0C3B:
		return "unassigned", true
	case 0x0C3C:
		return "unassigned", true
	case 0x0C3D:
		return "Avagraha", true
	case 0x0C3E:
		return "Sign Aa", true
	case 0x0C3F:
		return "Sign I", true
	case 0x0C40:
		return "Sign Ii", true
	case 0x0C41:
		return "Sign U", true
	case 0x0C42:
		return "Sign Uu", true
	case 0x0C43:
		return "Sign Vocalic R", true
	case 0x0C44:
		return "Sign Vocalic Rr", true
	case 0x0C45:
		return "unassigned", true
	case 0x0C46:
		return "Sign E", true
	case 0x0C47:
		return "Sign Ee", true
	case 0x0C48:
		return "Sign Ai", true
	case 0x0C49:
		return "unassigned", true
	case 0x0C4A:
		return "Sign O", true
	case 0x0C4B:
		return "Sign Oo", true
	case 0x0C4C:
		return "Sign Au", true
	case 0x0C4D:
		return "Virama", true
	case 0x0C4E:
		return "unassigned", true
	case 0x0C4F:
		return "unassigned", true
	case 0x0C50:
		return "unassigned", true
	case 0x0C51:
		return "unassigned", true
	case 0x0C52:
		return "unassigned", true
	case 0x0C53:
		return "unassigned", true
	case 0x0C54:
		return "unassigned", true
	case 0x0C55:
		return "Length Mark", true
	case 0x0C56:
		return "Ai Length Mark", true
	case 0x0C57:
		return "unassigned", true
	case 0x0C58:
		return "Tsa", true
	case 0x0C59:
		return "Dza", true
	case 0x0C5A:
		return "Rrra", true
	case 0x0C5B:
		return "unassigned", true
	case 0x0C5C:
		return "unassigned", true
	case 0x0C5D:
		return "unassigned", true
	case 0x0C5E:
		return "unassigned", true
	case 0x0C5F:
		return "unassigned", true
	case 0x0C60:
		return "Vocalic Rr", true
	case 0x0C61:
		return "Vocalic Ll", true
	case 0x0C62:
		return "Sign Vocalic L", true
	case 0x0C63:
		return "Sign Vocalic Ll", true
	case 0x0C64:
		return "unassigned", true
	case 0x0C65:
		return "unassigned", true
	case 0x0C66:
		return "Digit Zero", true
	case 0x0C67:
		return "Digit One", true
	case 0x0C68:
		return "Digit Two", true
	case 0x0C69:
		return "Digit Three", true
	case 0x0C6A:
		return "Digit Four", true
	case 0x0C6B:
		return "Digit Five", true
	case 0x0C6C:
		return "Digit Six", true
	case 0x0C6D:
		return "Digit Seven", true
	case 0x0C6E:
		return "Digit Eight", true
	case 0x0C6F:
		return "Digit Nine", true
	case 0x0C70:
		return "unassigned", true
	case 0x0C71:
		return "unassigned", true
	case 0x0C72:
		return "unassigned", true
	case 0x0C73:
		return "unassigned", true
	case 0x0C74:
		return "unassigned", true
	case 0x0C75:
		return "unassigned", true
	case 0x0C76:
		return "unassigned", true
	case 0x0C77:
		return "unassigned", true
	case 0x0C78:
		return "Fraction Zero Odd P", true
	case 0x0C79:
		return "Fraction One Odd P", true
	case 0x0C7A:
		return "Fraction Two Odd P", true
	case 0x0C7B:
		return "Fraction Three Odd P", true
	case 0x0C7C:
		return "Fraction One Even P", true
	case 0x0C7D:
		return "Fraction Two Even P", true
	case 0x0C7E:
		return "Fraction Three Even P", true
	case 0x0C7F:
		return "Tuumu", true
	case 0x0C80:
		return "Spacing Candrabindu", true
	case 0x0C81:
		return "Candrabindu", true
	case 0x0C82:
		return "Anusvara", true
	case 0x0C83:
		return "Visarga", true
	case 0x0C84:
		return "unassigned", true
	case 0x0C85:
		return "A", true
	case 0x0C86:
		return "Aa", true
	case 0x0C87:
		return "I", true
	case 0x0C88:
		return "Ii", true
	case 0x0C89:
		return "U", true
	case 0x0C8A:
		return "Uu", true
	case 0x0C8B:
		return "Vocalic R", true
	case 0x0C8C:
		return "Vocalic L", true
	case 0x0C8D:
		return "unassigned", true
	case 0x0C8E:
		return "E", true
	case 0x0C8F:
		return "Ee", true
	case 0x0C90:
		return "Ai", true
	case 0x0C91:
		return "unassigned", true
	case 0x0C92:
		return "O", true
	case 0x0C93:
		return "Oo", true
	case 0x0C94:
		return "Au", true
	case 0x0C95:
		return "Ka", true
	case 0x0C96:
		return "Kha", true
	case 0x0C97:
		return "Ga", true
	case 0x0C98:
		return "Gha", true
	case 0x0C99:
		return "Nga", true
	case 0x0C9A:
		return "Ca", true
	case 0x0C9B:
		return "Cha", true
	case 0x0C9C:
		return "Ja", true
	case 0x0C9D:
		return "Jha", true
	case 0x0C9E:
		return "Nya", true
	case 0x0C9F:
		return "Tta", true
	case 0x0CA0:
		return "Ttha", true
	case 0x0CA1:
		return "Dda", true
	case 0x0CA2:
		return "Ddha", true
	case 0x0CA3:
		return "Nna", true
	case 0x0CA4:
		return "Ta", true
	case 0x0CA5:
		return "Tha", true
	case 0x0CA6:
		return "Da", true
	case 0x0CA7:
		return "Dha", true
	case 0x0CA8:
		return "Na", true
	case 0x0CA9:
		return "unassigned", true
	case 0x0CAA:
		return "Pa", true
	case 0x0CAB:
		return "Pha", true
	case 0x0CAC:
		return "Ba", true
	case 0x0CAD:
		return "Bha", true
	case 0x0CAE:
		return "Ma", true
	case 0x0CAF:
		return "Ya", true
	case 0x0CB0:
		return "Ra", true
	case 0x0CB1:
		return "Rra", true
	case 0x0CB2:
		return "La", true
	case 0x0CB3:
		return "Lla", true
	case 0x0CB4:
		return "unassigned", true
	case 0x0CB5:
		return "Va", true
	case 0x0CB6:
		return "Sha", true
	case 0x0CB7:
		return "Ssa", true
	case 0x0CB8:
		return "Sa", true
	case 0x0CB9:
		return "Ha", true
	case 0x0CBA:
		return "unassigned", true
	case 0x0CBB:
		return "unassigned", true
	case 0x0CBC:
		return "Nukta", true
	case 0x0CBD:
		return "Avagraha", true
	case 0x0CBE:
		return "Sign Aa", true
	case 0x0CBF:
		return "Sign I", true
	case 0x0CC0:
		return "Sign Ii", true
	case 0x0CC1:
		return "Sign U", true
	case 0x0CC2:
		return "Sign Uu", true
	case 0x0CC3:
		return "Sign Vocalic R", true
	case 0x0CC4:
		return "Sign Vocalic Rr", true
	case 0x0CC5:
		return "unassigned", true
	case 0x0CC6:
		return "Sign E", true
	case 0x0CC7:
		return "Sign Ee", true
	case 0x0CC8:
		return "Sign Ai", true
	case 0x0CC9:
		return "unassigned", true
	case 0x0CCA:
		return "Sign O", true
	case 0x0CCB:
		return "Sign Oo", true
	case 0x0CCC:
		return "Sign Au", true
	case 0x0CCD:
		return "Virama", true
	case 0x0CCE:
		return "unassigned", true
	case 0x0CCF:
		return "unassigned", true
	case 0x0CD0:
		return "unassigned", true
	case 0x0CD1:
		return "unassigned", true
	case 0x0CD2:
		return "unassigned", true
	case 0x0CD3:
		return "unassigned", true
	case 0x0CD4:
		return "unassigned", true
	case 0x0CD5:
		return "Length Mark", true
	case 0x0CD6:
		return "Ai Length Mark", true
	case 0x0CD7:
		return "unassigned", true
	case 0x0CD8:
		return "unassigned", true
	case 0x0CD9:
		return "unassigned", true
	case 0x0CDA:
		return "unassigned", true
	case 0x0CDB:
		return "unassigned", true
	case 0x0CDC:
		return "unassigned", true
	case 0x0CDD:
		return "unassigned", true
	case 0x0CDE:
		return "Fa", true
	case 0x0CDF:
		return "unassigned", true
	case 0x0CE0:
		return "Vocalic Rr", true
	case 0x0CE1:
		return "Vocalic Ll", true
	case 0x0CE2:
		return "Sign Vocalic L", true
	case 0x0CE3:
		return "Sign Vocalic Ll", true
	case 0x0CE4:
		return "unassigned", true
	case 0x0CE5:
		return "unassigned", true
	case 0x0CE6:
		return "Digit Zero", true
	case 0x0CE7:
		return "Digit One", true
	case 0x0CE8:
		return "Digit Two", true
	case 0x0CE9:
		return "Digit Three", true
	case 0x0CEA:
		return "Digit Four", true
	case 0x0CEB:
		return "Digit Five", true
	case 0x0CEC:
		return "Digit Six", true
	case 0x0CED:
		return "Digit Seven", true
	case 0x0CEE:
		return "Digit Eight", true
	case 0x0CEF:
		return "Digit Nine", true
	case 0x0CF0:
		return "unassigned", true
	case 0x0CF1:
		return "Jihvamuliya", true
	case 0x0CF2:
		return "Upadhmaniya", true
	case 0x0D00:
		return "Combining Anusvara Above", true
	case 0x0D01:
		return "Candrabindu", true
	case 0x0D02:
		return "Anusvara", true
	case 0x0D03:
		return "Visarga", true
	case 0x0D04:
		return "unassigned", true
	case 0x0D05:
		return "A", true
	case 0x0D06:
		return "Aa", true
	case 0x0D07:
		return "I", true
	case 0x0D08:
		return "Ii", true
	case 0x0D09:
		return "U", true
	case 0x0D0A:
		return "Uu", true
	case 0x0D0B:
		return "Vocalic R", true
	case 0x0D0C:
		return "Vocalic L", true
	case 0x0D0D:
		return "unassigned", true
	case 0x0D0E:
		return "E", true
	case 0x0D0F:
		return "Ee", true
	case 0x0D10:
		return "Ai", true
	case 0x0D11:
		return "unassigned", true
	case 0x0D12:
		return "O", true
	case 0x0D13:
		return "Oo", true
	case 0x0D14:
		return "Au", true
	case 0x0D15:
		return "Ka", true
	case 0x0D16:
		return "Kha", true
	case 0x0D17:
		return "Ga", true
	case 0x0D18:
		return "Gha", true
	case 0x0D19:
		return "Nga", true
	case 0x0D1A:
		return "Ca", true
	case 0x0D1B:
		return "Cha", true
	case 0x0D1C:
		return "Ja", true
	case 0x0D1D:
		return "Jha", true
	case 0x0D1E:
		return "Nya", true
	case 0x0D1F:
		return "Tta", true
	case 0x0D20:
		return "Ttha", true
	case 0x0D21:
		return "Dda", true
	case 0x0D22:
		return "Ddha", true
	case 0x0D23:
		return "Nna", true
	case 0x0D24:
		return "Ta", true
	case 0x0D25:
		return "Tha", true
	case 0x0D26:
		return "Da", true
	case 0x0D27:
		return "Dha", true
	case 0x0D28:
		return "Na", true
	case 0x0D29:
		return "Nnna", true
	case 0x0D2A:
		return "Pa", true
	case 0x0D2B:
		return "Pha", true
	case 0x0D2C:
		return "Ba", true
	case 0x0D2D:
		return "Bha", true
	case 0x0D2E:
		return "Ma", true
	case 0x0D2F:
		return "Ya", true
	case 0x0D30:
		return "Ra", true
	case 0x0D31:
		return "Rra", true
	case 0x0D32:
		return "La", true
	case 0x0D33:
		return "Lla", true
	case 0x0D34:
		return "Llla", true
	case 0x0D35:
		return "Va", true
	case 0x0D36:
		return "Sha", true
	case 0x0D37:
		return "Ssa", true
	case 0x0D38:
		return "Sa", true
	case 0x0D39:
		return "Ha", true
	case 0x0D3A:
		return "Ttta", true
	case 0x0D3B:
		return "Vertical Bar Virama", true
	case 0x0D3C:
		return "Circular Virama", true
	case 0x0D3D:
		return "Avagraha", true
	case 0x0D3E:
		return "Sign Aa", true
	case 0x0D3F:
		return "Sign I", true
	case 0x0D40:
		return "Sign Ii", true
	case 0x0D41:
		return "Sign U", true
	case 0x0D42:
		return "Sign Uu", true
	case 0x0D43:
		return "Sign Vocalic R", true
	case 0x0D44:
		return "Sign Vocalic Rr", true
	case 0x0D45:
		return "unassigned", true
	case 0x0D46:
		return "Sign E", true
	case 0x0D47:
		return "Sign Ee", true
	case 0x0D48:
		return "Sign Ai", true
	case 0x0D49:
		return "unassigned", true
	case 0x0D4A:
		return "Sign O", true
	case 0x0D4B:
		return "Sign Oo", true
	case 0x0D4C:
		return "Sign Au", true
	case 0x0D4D:
		return "Virama", true
	case 0x0D4E:
		return "Dot Reph", true
	case 0x0D4F:
		return "Para", true
	case 0x0D50:
		return "unassigned", true
	case 0x0D51:
		return "unassigned", true
	case 0x0D52:
		return "unassigned", true
	case 0x0D53:
		return "unassigned", true
	case 0x0D54:
		return "Chillu M", true
	case 0x0D55:
		return "Chillu Y", true
	case 0x0D56:
		return "Chillu Lll", true
	case 0x0D57:
		return "Au Length Mark", true
	case 0x0D58:
		return "Fraction 1/160", true
	case 0x0D59:
		return "Fraction 1/40", true
	case 0x0D5A:
		return "Fraction 3/80", true
	case 0x0D5B:
		return "Fraction 1/20", true
	case 0x0D5C:
		return "Fraction 1/10", true
	case 0x0D5D:
		return "Fraction 3/20", true
	case 0x0D5E:
		return "Fraction 1/5", true
	case 0x0D5F:
		return "Archaic Ii", true
	case 0x0D60:
		return "Vocalic Rr", true
	case 0x0D61:
		return "Vocalic Ll", true
	case 0x0D62:
		return "Sign Vocalic L", true
	case 0x0D63:
		return "Sign Vocalic Ll", true
	case 0x0D64:
		return "unassigned", true
	case 0x0D65:
		return "unassigned", true
	case 0x0D66:
		return "Digit Zero", true
	case 0x0D67:
		return "Digit One", true
	case 0x0D68:
		return "Digit Two", true
	case 0x0D69:
		return "Digit Three", true
	case 0x0D6A:
		return "Digit Four", true
	case 0x0D6B:
		return "Digit Five", true
	case 0x0D6C:
		return "Digit Six", true
	case 0x0D6D:
		return "Digit Seven", true
	case 0x0D6E:
		return "Digit Eight", true
	case 0x0D6F:
		return "Digit Nine", true
	case 0x0D70:
		return "Number Ten", true
	case 0x0D71:
		return "Number One Hundred", true
	case 0x0D72:
		return "Number One Thousand", true
	case 0x0D73:
		return "Fraction 1/4", true
	case 0x0D74:
		return "Fraction 1/2", true
	case 0x0D75:
		return "Fraction 3/4", true
	case 0x0D76:
		return "Fraction 1/16", true
	case 0x0D77:
		return "Fraction 1/8", true
	case 0x0D78:
		return "Fraction 3/16", true
	case 0x0D79:
		return "Date Mark", true
	case 0x0D7A:
		return "Chillu Nn", true
	case 0x0D7B:
		return "Chillu N", true
	case 0x0D7C:
		return "Chillu Rr", true
	case 0x0D7D:
		return "Chillu L", true
	case 0x0D7E:
		return "Chillu Ll", true
	case 0x0D7F:
		return "Chillu K", true
	case 0x0D80:
		return "unassigned", true
	case 0x0D81:
		return "unassigned", true
	case 0x0D82:
		return "Anusvara", true
	case 0x0D83:
		return "Visarga", true
	case 0x0D84:
		return "unassigned", true
	case 0x0D85:
		return "A", true
	case 0x0D86:
		return "Aa", true
	case 0x0D87:
		return "Ae", true
	case 0x0D88:
		return "Aae", true
	case 0x0D89:
		return "I", true
	case 0x0D8A:
		return "Ii", true
	case 0x0D8B:
		return "U", true
	case 0x0D8C:
		return "Uu", true
	case 0x0D8D:
		return "Vocalic R", true
	case 0x0D8E:
		return "Vocalic Rr", true
	case 0x0D8F:
		return "Vocalic L", true
	case 0x0D90:
		return "Vocalic Ll", true
	case 0x0D91:
		return "E", true
	case 0x0D92:
		return "Ee", true
	case 0x0D93:
		return "Ai", true
	case 0x0D94:
		return "O", true
	case 0x0D95:
		return "Oo", true
	case 0x0D96:
		return "Au", true
	case 0x0D97:
		return "unassigned", true
	case 0x0D98:
		return "unassigned", true
	case 0x0D99:
		return "unassigned", true
	case 0x0D9A:
		return "Ka", true
	case 0x0D9B:
		return "Kha", true
	case 0x0D9C:
		return "Ga", true
	case 0x0D9D:
		return "Gha", true
	case 0x0D9E:
		return "Nga", true
	case 0x0D9F:
		return "Nnga", true
	case 0x0DA0:
		return "Ca", true
	case 0x0DA1:
		return "Cha", true
	case 0x0DA2:
		return "Ja", true
	case 0x0DA3:
		return "Jha", true
	case 0x0DA4:
		return "Nya", true
	case 0x0DA5:
		return "Jnya", true
	case 0x0DA6:
		return "Nyja", true
	case 0x0DA7:
		return "Tta", true
	case 0x0DA8:
		return "Ttha", true
	case 0x0DA9:
		return "Dda", true
	case 0x0DAA:
		return "Ddha", true
	case 0x0DAB:
		return "Nna", true
	case 0x0DAC:
		return "Nndda", true
	case 0x0DAD:
		return "Ta", true
	case 0x0DAE:
		return "Tha", true
	case 0x0DAF:
		return "Da", true
	case 0x0DB0:
		return "Dha", true
	case 0x0DB1:
		return "Na", true
	case 0x0DB2:
		return "unassigned", true
	case 0x0DB3:
		return "Nda", true
	case 0x0DB4:
		return "Pa", true
	case 0x0DB5:
		return "Pha", true
	case 0x0DB6:
		return "Ba", true
	case 0x0DB7:
		return "Bha", true
	case 0x0DB8:
		return "Ma", true
	case 0x0DB9:
		return "Mba", true
	case 0x0DBA:
		return "Ya", true
	case 0x0DBB:
		return "Ra", true
	case 0x0DBC:
		return "unassigned", true
	case 0x0DBD:
		return "La", true
	case 0x0DBE:
		return "unassigned", true
	case 0x0DBF:
		return "unassigned", true
	case 0x0DC0:
		return "Va", true
	case 0x0DC1:
		return "Sha", true
	case 0x0DC2:
		return "Ssa", true
	case 0x0DC3:
		return "Sa", true
	case 0x0DC4:
		return "Ha", true
	case 0x0DC5:
		return "Lla", true
	case 0x0DC6:
		return "Fa", true
	case 0x0DC7:
		return "unassigned", true
	case 0x0DC8:
		return "unassigned", true
	case 0x0DC9:
		return "unassigned", true
	case 0x0DCA:
		return "Virama", true
	case 0x0DCB:
		return "unassigned", true
	case 0x0DCC:
		return "unassigned", true
	case 0x0DCD:
		return "unassigned", true
	case 0x0DCE:
		return "unassigned", true
	case 0x0DCF:
		return "Sign Aa", true
	case 0x0DD0:
		return "Sign Ae", true
	case 0x0DD1:
		return "Sign Aae", true
	case 0x0DD2:
		return "Sign I", true
	case 0x0DD3:
		return "Sign Ii", true
	case 0x0DD4:
		return "Sign U", true
	case 0x0DD5:
		return "unassigned", true
	case 0x0DD6:
		return "Sign Uu", true
	case 0x0DD7:
		return "unassigned", true
	case 0x0DD8:
		return "Sign Vocalic R", true
	case 0x0DD9:
		return "Sign E", true
	case 0x0DDA:
		return "Sign Ee", true
	case 0x0DDB:
		return "Sign Ai", true
	case 0x0DDC:
		return "Sign O", true
	case 0x0DDD:
		return "Sign Oo", true
	case 0x0DDE:
		return "Sign Au", true
	case 0x0DDF:
		return "Sign Vocalic L", true
	case 0x0DE0:
		return "unassigned", true
	case 0x0DE1:
		return "unassigned", true
	case 0x0DE2:
		return "unassigned", true
	case 0x0DE3:
		return "unassigned", true
	case 0x0DE4:
		return "unassigned", true
	case 0x0DE5:
		return "unassigned", true
	case 0x0DE6:
		return "Digit Zero", true
	case 0x0DE7:
		return "Digit One", true
	case 0x0DE8:
		return "Digit Two", true
	case 0x0DE9:
		return "Digit Three", true
	case 0x0DEA:
		return "Digit Four", true
	case 0x0DEB:
		return "Digit Five", true
	case 0x0DEC:
		return "Digit Six", true
	case 0x0DED:
		return "Digit Seven", true
	case 0x0DEE:
		return "Digit Eight", true
	case 0x0DEF:
		return "Digit Nine", true
	case 0x0DF0:
		return "unassigned", true
	case 0x0DF1:
		return "unassigned", true
	case 0x0DF2:
		return "Sign Vocalic Rr", true
	case 0x0DF3:
		return "Sign Vocalic Ll", true
	case 0x0DF4:
		return "Kunddaliya", true
	case 0x0DF5:
		return "unassigned", true
	case 0x0DF6:
		return "unassigned", true
	case 0x0DF7:
		return "unassigned", true
	case 0x0DF8:
		return "unassigned", true
	case 0x0DF9:
		return "unassigned", true
	case 0x0DFA:
		return "unassigned", true
	case 0x0DFB:
		return "unassigned", true
	case 0x0DFC:
		return "unassigned", true
	case 0x0DFD:
		return "unassigned", true
	case 0x0DFE:
		return "unassigned", true
	case 0x0DFF:
		return "unassigned", true
	case 0x1000:
		return "Ka", true
	case 0x1001:
		return "Kha", true
	case 0x1002:
		return "Ga", true
	case 0x1003:
		return "Gha", true
	case 0x1004:
		return "Nga", true
	case 0x1005:
		return "Ca", true
	case 0x1006:
		return "Cha", true
	case 0x1007:
		return "Ja", true
	case 0x1008:
		return "Jha", true
	case 0x1009:
		return "Nya", true
	case 0x100A:
		return "Nnya", true
	case 0x100B:
		return "Tta", true
	case 0x100C:
		return "Ttha", true
	case 0x100D:
		return "Dda", true
	case 0x100E:
		return "DDha", true
	case 0x100F:
		return "Nna", true
	case 0x1010:
		return "Ta", true
	case 0x1011:
		return "Tha", true
	case 0x1012:
		return "Da", true
	case 0x1013:
		return "Dha", true
	case 0x1014:
		return "Na", true
	case 0x1015:
		return "Pa", true
	case 0x1016:
		return "Pha", true
	case 0x1017:
		return "Ba", true
	case 0x1018:
		return "Bha", true
	case 0x1019:
		return "Ma", true
	case 0x101A:
		return "Ya", true
	case 0x101B:
		return "Ra", true
	case 0x101C:
		return "La", true
	case 0x101D:
		return "Wa", true
	case 0x101E:
		return "Sa", true
	case 0x101F:
		return "Ha", true
	case 0x1020:
		return "Lla", true
	case 0x1021:
		return "A", true
	case 0x1022:
		return "Shan A", true
	case 0x1023:
		return "I", true
	case 0x1024:
		return "Ii", true
	case 0x1025:
		return "U", true
	case 0x1026:
		return "Uu", true
	case 0x1027:
		return "E", true
	case 0x1028:
		return "Mon E", true
	case 0x1029:
		return "O", true
	case 0x102A:
		return "Au", true
	case 0x102B:
		return "Sign Tall Aa", true
	case 0x102C:
		return "Sign Aa", true
	case 0x102D:
		return "Sign I", true
	case 0x102E:
		return "Sign Ii", true
	case 0x102F:
		return "Sign U", true
	case 0x1030:
		return "Sign Uu", true
	case 0x1031:
		return "Sign E", true
	case 0x1032:
		return "Sign Ai", true
	case 0x1033:
		return "Sign Mon Ii", true
	case 0x1034:
		return "Sign Mon O", true
	case 0x1035:
		return "Sign E Above", true
	case 0x1036:
		return "Anusvara", true
	case 0x1037:
		return "Dot Below", true
	case 0x1038:
		return "Visarga", true
	case 0x1039:
		return "Virama", true
	case 0x103A:
		return "Asat", true
	case 0x103B:
		return "Sign Medial Ya", true
	case 0x103C:
		return "Sign Medial Ra", true
	case 0x103D:
		return "Sign Medial Wa", true
	case 0x103E:
		return "Sign Medial Ha", true
	case 0x103F:
		return "Great Sa", true
	case 0x1040:
		return "Digit Zero", true
	case 0x1041:
		return "Digit One", true
	case 0x1042:
		return "Digit Two", true
	case 0x1043:
		return "Digit Three", true
	case 0x1044:
		return "Digit Four", true
	case 0x1045:
		return "Digit Five", true
	case 0x1046:
		return "Digit Six", true
	case 0x1047:
		return "Digit Seven", true
	case 0x1048:
		return "Digit Eight", true
	case 0x1049:
		return "Digit Nine", true
	case 0x104A:
		return "Little Section", true
	case 0x104B:
		return "Section", true
	case 0x104C:
		return "Locative", true
	case 0x104D:
		return "Completed", true
	case 0x104E:
		return "Aforementioned", true
	case 0x104F:
		return "Genitive", true
	case 0x1050:
		return "Sha", true
	case 0x1051:
		return "Ssa", true
	case 0x1052:
		return "Vocalic R", true
	case 0x1053:
		return "Vocalic Rr", true
	case 0x1054:
		return "Vocalic L", true
	case 0x1055:
		return "Vocalic Ll", true
	case 0x1056:
		return "Sign Vocalic R", true
	case 0x1057:
		return "Sign Vocalic Rr", true
	case 0x1058:
		return "Sign Vocalic L", true
	case 0x1059:
		return "Sign Vocalic Ll", true
	case 0x105A:
		return "Mon Nga", true
	case 0x105B:
		return "Mon Jha", true
	case 0x105C:
		return "Mon Bba", true
	case 0x105D:
		return "Mon Bbe", true
	case 0x105E:
		return "Sign Mon Medial Na", true
	case 0x105F:
		return "Sign Mon Medial Ma", true
	case 0x1060:
		return "Sign Mon Medial La", true
	case 0x1061:
		return "Sgaw Karen Sha", true
	case 0x1062:
		return "Sign Sgaw Karen Eu", true
	case 0x1063:
		return "Tone Sgaw Karen Hathi", true
	case 0x1064:
		return "Tone Sgaw Karen Ke Pho", true
	case 0x1065:
		return "Western Pwo Karen Tha", true
	case 0x1066:
		return "Western Pwo Karen Pwa", true
	case 0x1067:
		return "Sign Western Pwo Karen Eu", true
	case 0x1068:
		return "Sign Western Pwo Karen Ue", true
	case 0x1069:
		return "Sign Western Pwo Karen Tone 1", true
	case 0x106A:
		return "Sign Western Pwo Karen Tone 2", true
	case 0x106B:
		return "Sign Western Pwo Karen Tone 3", true
	case 0x106C:
		return "Sign Western Pwo Karen Tone 4", true
	case 0x106D:
		return "Sign Western Pwo Karen Tone 5", true
	case 0x106E:
		return "Eastern Pwo Karen Nna", true
	case 0x106F:
		return "Eastern Pwo Karen Ywa", true
	case 0x1070:
		return "Eastern Pwo Karen Ghwa", true
	case 0x1071:
		return "Sign Geba Karen I", true
	case 0x1072:
		return "Sign Kayah Oe", true
	case 0x1073:
		return "Sign Kayah U", true
	case 0x1074:
		return "Sign Kayah Ee", true
	case 0x1075:
		return "Shan Ka", true
	case 0x1076:
		return "Shan Kha", true
	case 0x1077:
		return "Shan Ga", true
	case 0x1078:
		return "Shan Ca", true
	case 0x1079:
		return "Shan Za", true
	case 0x107A:
		return "Shan Nya", true
	case 0x107B:
		return "Shan Da", true
	case 0x107C:
		return "Shan Na", true
	case 0x107D:
		return "Shan Pha", true
	case 0x107E:
		return "Shan Fa", true
	case 0x107F:
		return "Shan Ba", true
	case 0x1080:
		return "Shan Tha", true
	case 0x1081:
		return "Shan Ha", true
	case 0x1082:
		return "Sign Shan Medial Wa", true
	case 0x1083:
		return "Sign Shan Aa", true
	case 0x1084:
		return "Sign Shan E", true
	case 0x1085:
		return "Sign Shan E Above", true
	case 0x1086:
		return "Sign Shan Final Y", true
	case 0x1087:
		return "Sign Shan Tone 2", true
	case 0x1088:
		return "Sign Shan Tone 3", true
	case 0x1089:
		return "Sign Shan Tone 5", true
	case 0x108A:
		return "Sign Shan Tone 6", true
	case 0x108B:
		return "Sign Shan Council Tone 2", true
	case 0x108C:
		return "Sign Shan Council Tone 3", true
	case 0x108D:
		return "Sign Shan Council Emphatic Tone", true
	case 0x108E:
		return "Rumai Palaung Fa", true
	case 0x108F:
		return "Sign Rumai Palaung Tone 5", true
	case 0x1090:
		return "Shan Digit Zero", true
	case 0x1091:
		return "Shan Digit One", true
	case 0x1092:
		return "Shan Digit Two", true
	case 0x1093:
		return "Shan Digit Three", true
	case 0x1094:
		return "Shan Digit Four", true
	case 0x1095:
		return "Shan Digit Five", true
	case 0x1096:
		return "Shan Digit Six", true
	case 0x1097:
		return "Shan Digit Seven", true
	case 0x1098:
		return "Shan Digit Eight", true
	case 0x1099:
		return "Shan Digit Nine", true
	case 0x109A:
		return "Sign Khamti Tone 1", true
	case 0x109B:
		return "Sign Khamti Tone 3", true
	case 0x109C:
		return "Sign Aiton A", true
	case 0x109D:
		return "Sign Aiton Ai", true
	case 0x109E:
		return "Shan One", true
	case 0x109F:
		return "Shan Exclamation", true
	case 0x1CD0:
		return "Tone Karshana", true
	case 0x1CD1:
		return "Tone Shara", true
	case 0x1CD2:
		return "Tone Prenkha", true
	case 0x1CD3:
		return "Sign Nihshvasa", true
	case 0x1CD4:
		return "Tone Midline Svarita", true
	case 0x1CD5:
		return "Tone Aggravated Independent Svarita", true
	case 0x1CD6:
		return "Tone Independent Svarita", true
	case 0x1CD7:
		return "Tone Kathaka Independent Svarita", true
	case 0x1CD8:
		return "Tone Candra Below", true
	case 0x1CD9:
		return "Tone Kathaka Independent Svarita Schroeder", true
	case 0x1CDA:
		return "Tone Double Svarita", true
	case 0x1CDB:
		return "Tone Triple Svarita", true
	case 0x1CDC:
		return "Tone Kathaka Anudatta", true
	case 0x1CDD:
		return "Tone Dot Below", true
	case 0x1CDE:
		return "Tone Two Dots Below", true
	case 0x1CDF:
		return "Tone Three Dots Below", true
	case 0x1CE0:
		return "Tone Rigvedic Kashmiri Independent Svarita", true
	case 0x1CE1:
		return "Tone Atharavedic Independent Svarita", true
	case 0x1CE2:
		return "Sign Visarga Svarita", true
	case 0x1CE3:
		return "Sign Visarga Udatta", true
	case 0x1CE4:
		return "Sign Reversed Visarga Udatta", true
	case 0x1CE5:
		return "Sign Visarga Anudatta", true
	case 0x1CE6:
		return "Sign Reversed Visarga Anudatta", true
	case 0x1CE7:
		return "Sign Visarga Udatta With Tail", true
	case 0x1CE8:
		return "Sign Visarga Anudatta With Tail", true
	case 0x1CE9:
		return "Sign Anusvara Antargomukha", true
	case 0x1CEA:
		return "Sign Anusvara Bahirgomukha", true
	case 0x1CEB:
		return "Sign Anusvara Vamagomukha", true
	case 0x1CEC:
		return "Sign Anusvara Vamagomukha With Tail", true
	case 0x1CED:
		return "Sign Tiryak", true
	case 0x1CEE:
		return "Sign Hexiform Long Anusvara", true
	case 0x1CEF:
		return "Sign Long Anusvara", true
	case 0x1CF0:
		return "Sign Rthang Long Anusvara", true
	case 0x1CF1:
		return "Sign Anusvara Ubhayato Mukha", true
	case 0x1CF2:
		return "Sign Ardhavisarga", true
	case 0x1CF3:
		return "Sign Rotated Ardhavisarga", true
	case 0x1CF4:
		return "Tone Candra Above", true
	case 0x1CF5:
		return "Sign Jihvamuliya", true
	case 0x1CF6:
		return "Sign Upadhmaniya", true
	case 0x1CF7:
		return "Sign Atikrama", true
	case 0x1CF8:
		return "Tone Ring Above", true
	case 0x1CF9:
		return "Tone Double Ring Above", true
	case 0x200C:
		return "Zero-width non-joiner", true
	case 0x200D:
		return "Zero-width joiner", true
	case 0x2010:
		return "Hyphen", true
	case 0x2011:
		return "No-break hyphen", true
	case 0x2012:
		return "Figure dash", true
	case 0x2013:
		return "En dash", true
	case 0x2014:
		return "Em dash", true
	case 0x2074:
		return "Superscript Four (used in Tamil)", true
	case 0x2082:
		return "Subscript Two (used in Tamil)", true
	case 0x2083:
		return "Subscript Three (used in Tamil)", true
	case 0x2084:
		return "Subscript Four (used in Tamil)", true
	case 0x25CC:
		return "Dotted circle", true
	case 0xA8E0:
		return "Combining Zero", true
	case 0xA8E1:
		return "Combining One", true
	case 0xA8E2:
		return "Combining Two", true
	case 0xA8E3:
		return "Combining Three", true
	case 0xA8E4:
		return "Combining Four", true
	case 0xA8E5:
		return "Combining Five", true
	case 0xA8E6:
		return "Combining Six", true
	case 0xA8E7:
		return "Combining Seven", true
	case 0xA8E8:
		return "Combining Eight", true
	case 0xA8E9:
		return "Combining Nine", true
	case 0xA8EA:
		return "Combining A", true
	case 0xA8EB:
		return "Combining U", true
	case 0xA8EC:
		return "Combining Ka", true
	case 0xA8ED:
		return "Combining Na", true
	case 0xA8EE:
		return "Combining Pa", true
	case 0xA8EF:
		return "Combining Ra", true
	case 0xA8F0:
		return "Combining Vi", true
	case 0xA8F1:
		return "Combining Avagraha", true
	case 0xA8F2:
		return "Spacing Candrabindu", true
	case 0xA8F3:
		return "Candrabindu Virama", true
	case 0xA8F4:
		return "Double Candrabindu Virama", true
	case 0xA8F5:
		return "Candrabindu Two", true
	case 0xA8F6:
		return "Candrabindu Three", true
	case 0xA8F7:
		return "Candrabindu Avagraha", true
	case 0xA8F8:
		return "Pushpika", true
	case 0xA8F9:
		return "Gap Filler", true
	case 0xA8FA:
		return "Caret", true
	case 0xA8FB:
		return "Headstroke", true
	case 0xA8FC:
		return "Siddham", true
	case 0xA8FD:
		return "Jain Om", true
	case 0xA9E0:
		return "Shan Gha", true
	case 0xA9E1:
		return "Shan Cha", true
	case 0xA9E2:
		return "Shan Jha", true
	case 0xA9E3:
		return "Shan Nna", true
	case 0xA9E4:
		return "Shan Bha", true
	case 0xA9E5:
		return "Sign Shan Saw", true
	case 0xA9E6:
		return "Shan Reduplication", true
	case 0xA9E7:
		return "Tai Laing Nya", true
	case 0xA9E8:
		return "Tai Laing Fa", true
	case 0xA9E9:
		return "Tai Laing Ga", true
	case 0xA9EA:
		return "Tai Laing Gha", true
	case 0xA9EB:
		return "Tai Laing Ja", true
	case 0xA9EC:
		return "Tai Laing Jha", true
	case 0xA9ED:
		return "Tai Laing Dda", true
	case 0xA9EE:
		return "Tai Laing Ddha", true
	case 0xA9EF:
		return "Tai Laing Nna", true
	case 0xA9F0:
		return "Tai Laing Digit Zero", true
	case 0xA9F1:
		return "Tai Laing Digit One", true
	case 0xA9F2:
		return "Tai Laing Digit Two", true
	case 0xA9F3:
		return "Tai Laing Digit Three", true
	case 0xA9F4:
		return "Tai Laing Digit Four", true
	case 0xA9F5:
		return "Tai Laing Digit Five", true
	case 0xA9F6:
		return "Tai Laing Digit Six", true
	case 0xA9F7:
		return "Tai Laing Digit Seven", true
	case 0xA9F8:
		return "Tai Laing Digit Eight", true
	case 0xA9F9:
		return "Tai Laing Digit Nine", true
	case 0xA9FA:
		return "Tai Laing Lla", true
	case 0xA9FB:
		return "Tai Laing Da", true
	case 0xA9FC:
		return "Tai Laing Dha", true
	case 0xA9FD:
		return "Tai Laing Ba", true
	case 0xA9FE:
		return "Tai Laing Bha", true
	case 0xAA60:
		return "Khamti Ga", true
	case 0xAA61:
		return "Khamti Ca", true
	case 0xAA62:
		return "Khamti Cha", true
	case 0xAA63:
		return "Khamti Ja", true
	case 0xAA64:
		return "Khamti Jha", true
	case 0xAA65:
		return "Khamti Nya", true
	case 0xAA66:
		return "Khamti Tta", true
	case 0xAA67:
		return "Khamti Ttha", true
	case 0xAA68:
		return "Khamti Dda", true
	case 0xAA69:
		return "Khamti Ddha", true
	case 0xAA6A:
		return "Khamti Dha", true
	case 0xAA6B:
		return "Khamti Na", true
	case 0xAA6C:
		return "Khamti Sa", true
	case 0xAA6D:
		return "Khamti Ha", true
	case 0xAA6E:
		return "Khamti Hha", true
	case 0xAA6F:
		return "Khamti Fa", true
	case 0xAA70:
		return "Khamti Reduplication", true
	case 0xAA71:
		return "Khamti Xa", true
	case 0xAA72:
		return "Khamti Za", true
	case 0xAA73:
		return "Khamti Ra", true
	case 0xAA74:
		return "Khamti Oay", true
	case 0xAA75:
		return "Khamti Qn", true
	case 0xAA76:
		return "Khamti Hm", true
	case 0xAA77:
		return "Khamti Aiton Exclamation", true
	case 0xAA78:
		return "Khamti Aiton One", true
	case 0xAA79:
		return "Khamti Aiton Two", true
	case 0xAA7A:
		return "Khamti Aiton Ra", true
	case 0xAA7B:
		return "Sign Pao Karen Tone", true
	case 0xAA7C:
		return "Sign Tai Laing Tone 2", true
	case 0xAA7D:
		return "Sign Tai Laing Tone 5", true
	case 0xAA7E:
		return "Shwe Palaung Cha", true
	case 0xAA7F:
		return "Shwe Palaung Sha", true
	case 0x111E0:
		return "unassigned", true
	case 0x111E1:
		return "Archaic Digit One", true
	case 0x111E2:
		return "Archaic Digit Two", true
	case 0x111E3:
		return "Archaic Digit Three", true
	case 0x111E4:
		return "Archaic Digit Four", true
	case 0x111E5:
		return "Archaic Digit Five", true
	case 0x111E6:
		return "Archaic Digit Six", true
	case 0x111E7:
		return "Archaic Digit Seven", true
	case 0x111E8:
		return "Archaic Digit Eight", true
	case 0x111E9:
		return "Archaic Digit Nine", true
	case 0x111EA:
		return "Archaic Number Ten", true
	case 0x111EB:
		return "Archaic Number 20", true
	case 0x111EC:
		return "Archaic Number 30", true
	case 0x111ED:
		return "Archaic Number 40", true
	case 0x111EE:
		return "Archaic Number 50", true
	case 0x111EF:
		return "Archaic Number 60", true
	case 0x111F0:
		return "Archaic Number 70", true
	case 0x111F1:
		return "Archaic Number 80", true
	case 0x111F2:
		return "Archaic Number 90", true
	case 0x111F3:
		return "Archaic Number 100", true
	case 0x111F4:
		return "Archaic Number 1000", true
	case 0x111F5:
		return "unassigned", true
	case 0x111F6:
		return "unassigned", true
	case 0x111F7:
		return "unassigned", true
	case 0x111F8:
		return "unassigned", true
	case 0x111F9:
		return "unassigned", true
	case 0x111FA:
		return "unassigned", true
	case 0x111FB:
		return "unassigned", true
	case 0x111FC:
		return "unassigned", true
	case 0x111FD:
		return "unassigned", true
	case 0x111FE:
		return "unassigned", true
	case 0x111FF:
		return "unassigned", true
	case 0x11301:
		return "Grantha Candrabindu", true
	case 0x11303:
		return "Grantha Visarga", true
	case 0x1133C:
		return "Grantha Nukta", true
	}
	return "", false
}
