package cpt

// indicLookup implements the Indic character property table: Devanagari
// U+0900-U+097F, Bengali U+0980-U+09FE, Gurmukhi U+0A00-U+0A76, Gujarati
// U+0A81-U+0AFF, Oriya U+0B00-U+0B77, Tamil U+0B80-U+0BFA, Telugu
// U+0C00-U+0C7F, Kannada U+0C80-U+0CF2, Malayalam U+0D00-U+0D7F, Sinhala
// U+0D80-U+0DF4, Vedic Extensions U+1CD0-U+1CF9, Devanagari Extended
// U+A8E0-U+A8FF, Sinhala Archaic Numbers U+111E1-U+111F4, Grantha marks
// (U+11301, U+11303, U+1133C), plus the miscellaneous range shared with
// Myanmar. Every other codepoint returns (None, NoPlacement).
//
// HarfBuzz equivalent: hb-ot-shaper-indic-table.cc.
func indicLookup(cp rune) (IndicShapingClass, MarkPlacement) {
	switch cp {

	// Devanagari
	case 0x0900:
		return Bindu, TopPosition // Inverted Candrabindu
	case 0x0901:
		return Bindu, TopPosition // Candrabindu
	case 0x0902:
		return Bindu, TopPosition // Anusvara
	case 0x0903:
		return Visarga, RightPosition // Visarga
	case 0x0904:
		return VowelIndependent, NoPlacement // Short A
	case 0x0905:
		return VowelIndependent, NoPlacement // A
	case 0x0906:
		return VowelIndependent, NoPlacement // Aa
	case 0x0907:
		return VowelIndependent, NoPlacement // I
	case 0x0908:
		return VowelIndependent, NoPlacement // Ii
	case 0x0909:
		return VowelIndependent, NoPlacement // U
	case 0x090A:
		return VowelIndependent, NoPlacement // Uu
	case 0x090B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x090C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x090D:
		return VowelIndependent, NoPlacement // Candra E
	case 0x090E:
		return VowelIndependent, NoPlacement // Short E
	case 0x090F:
		return VowelIndependent, NoPlacement // E
	case 0x0910:
		return VowelIndependent, NoPlacement // Ai
	case 0x0911:
		return VowelIndependent, NoPlacement // Candra O
	case 0x0912:
		return VowelIndependent, NoPlacement // Short O
	case 0x0913:
		return VowelIndependent, NoPlacement // O
	case 0x0914:
		return VowelIndependent, NoPlacement // Au
	case 0x0915:
		return Consonant, NoPlacement // Ka
	case 0x0916:
		return Consonant, NoPlacement // Kha
	case 0x0917:
		return Consonant, NoPlacement // Ga
	case 0x0918:
		return Consonant, NoPlacement // Gha
	case 0x0919:
		return Consonant, NoPlacement // Nga
	case 0x091A:
		return Consonant, NoPlacement // Ca
	case 0x091B:
		return Consonant, NoPlacement // Cha
	case 0x091C:
		return Consonant, NoPlacement // Ja
	case 0x091D:
		return Consonant, NoPlacement // Jha
	case 0x091E:
		return Consonant, NoPlacement // Nya
	case 0x091F:
		return Consonant, NoPlacement // Tta
	case 0x0920:
		return Consonant, NoPlacement // Ttha
	case 0x0921:
		return Consonant, NoPlacement // Dda
	case 0x0922:
		return Consonant, NoPlacement // Ddha
	case 0x0923:
		return Consonant, NoPlacement // Nna
	case 0x0924:
		return Consonant, NoPlacement // Ta
	case 0x0925:
		return Consonant, NoPlacement // Tha
	case 0x0926:
		return Consonant, NoPlacement // Da
	case 0x0927:
		return Consonant, NoPlacement // Dha
	case 0x0928:
		return Consonant, NoPlacement // Na
	case 0x0929:
		return Consonant, NoPlacement // Nnna
	case 0x092A:
		return Consonant, NoPlacement // Pa
	case 0x092B:
		return Consonant, NoPlacement // Pha
	case 0x092C:
		return Consonant, NoPlacement // Ba
	case 0x092D:
		return Consonant, NoPlacement // Bha
	case 0x092E:
		return Consonant, NoPlacement // Ma
	case 0x092F:
		return Consonant, NoPlacement // Ya
	case 0x0930:
		return Consonant, NoPlacement // Ra
	case 0x0931:
		return Consonant, NoPlacement // Rra
	case 0x0932:
		return Consonant, NoPlacement // La
	case 0x0933:
		return Consonant, NoPlacement // Lla
	case 0x0934:
		return Consonant, NoPlacement // Llla
	case 0x0935:
		return Consonant, NoPlacement // Va
	case 0x0936:
		return Consonant, NoPlacement // Sha
	case 0x0937:
		return Consonant, NoPlacement // Ssa
	case 0x0938:
		return Consonant, NoPlacement // Sa
	case 0x0939:
		return Consonant, NoPlacement // Ha
	case 0x093A:
		return VowelDependent, TopPosition // Sign Oe
	case 0x093B:
		return VowelDependent, RightPosition // Sign Ooe
	case 0x093C:
		return Nukta, BottomPosition // Nukta
	case 0x093D:
		return Avagraha, NoPlacement // Avagraha
	case 0x093E:
		return VowelDependent, RightPosition // Sign Aa
	case 0x093F:
		return VowelDependent, LeftPosition // Sign I
	case 0x0940:
		return VowelDependent, RightPosition // Sign Ii
	case 0x0941:
		return VowelDependent, BottomPosition // Sign U
	case 0x0942:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x0943:
		return VowelDependent, BottomPosition // Sign Vocalic R
	case 0x0944:
		return VowelDependent, BottomPosition // Sign Vocalic Rr
	case 0x0945:
		return VowelDependent, TopPosition // Sign Candra E
	case 0x0946:
		return VowelDependent, TopPosition // Sign Short E
	case 0x0947:
		return VowelDependent, TopPosition // Sign E
	case 0x0948:
		return VowelDependent, TopPosition // Sign Ai
	case 0x0949:
		return VowelDependent, RightPosition // Sign Candra O
	case 0x094A:
		return VowelDependent, RightPosition // Sign Short O
	case 0x094B:
		return VowelDependent, RightPosition // Sign O
	case 0x094C:
		return VowelDependent, RightPosition // Sign Au
	case 0x094D:
		return Virama, BottomPosition // Virama
	case 0x094E:
		return VowelDependent, LeftPosition // Sign Prishthamatra E
	case 0x094F:
		return VowelDependent, RightPosition // Sign Aw
	case 0x0950:
		return None, NoPlacement // Om
	case 0x0951:
		return Cantillation, TopPosition // Udatta
	case 0x0952:
		return Cantillation, BottomPosition // Anudatta
	case 0x0953:
		return None, TopPosition // Grave accent
	case 0x0954:
		return None, TopPosition // Acute accent
	case 0x0955:
		return VowelDependent, TopPosition // Sign Candra Long E
	case 0x0956:
		return VowelDependent, BottomPosition // Sign Ue
	case 0x0957:
		return VowelDependent, BottomPosition // Sign Uue
	case 0x0958:
		return Consonant, NoPlacement // Qa
	case 0x0959:
		return Consonant, NoPlacement // Khha
	case 0x095A:
		return Consonant, NoPlacement // Ghha
	case 0x095B:
		return Consonant, NoPlacement // Za
	case 0x095C:
		return Consonant, NoPlacement // Dddha
	case 0x095D:
		return Consonant, NoPlacement // Rha
	case 0x095E:
		return Consonant, NoPlacement // Fa
	case 0x095F:
		return Consonant, NoPlacement // Yya
	case 0x0960:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0961:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0962:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0963:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0964:
		return None, NoPlacement // Danda
	case 0x0965:
		return None, NoPlacement // Double Danda
	case 0x0966:
		return Number, NoPlacement // Digit Zero
	case 0x0967:
		return Number, NoPlacement // Digit One
	case 0x0968:
		return Number, NoPlacement // Digit Two
	case 0x0969:
		return Number, NoPlacement // Digit Three
	case 0x096A:
		return Number, NoPlacement // Digit Four
	case 0x096B:
		return Number, NoPlacement // Digit Five
	case 0x096C:
		return Number, NoPlacement // Digit Six
	case 0x096D:
		return Number, NoPlacement // Digit Seven
	case 0x096E:
		return Number, NoPlacement // Digit Eight
	case 0x096F:
		return Number, NoPlacement // Digit Nine
	case 0x0970:
		return None, NoPlacement // Abbreviation Sign
	case 0x0971:
		return None, NoPlacement // Sign High Spacing Dot
	case 0x0972:
		return VowelIndependent, NoPlacement // Candra Aa
	case 0x0973:
		return VowelIndependent, NoPlacement // Oe
	case 0x0974:
		return VowelIndependent, NoPlacement // Ooe
	case 0x0975:
		return VowelIndependent, NoPlacement // Aw
	case 0x0976:
		return VowelIndependent, NoPlacement // Ue
	case 0x0977:
		return VowelIndependent, NoPlacement // Uue
	case 0x0978:
		return Consonant, NoPlacement // Marwari Dda
	case 0x0979:
		return Consonant, NoPlacement // Zha
	case 0x097A:
		return Consonant, NoPlacement // Heavy Ya
	case 0x097B:
		return Consonant, NoPlacement // Gga
	case 0x097C:
		return Consonant, NoPlacement // Jja
	case 0x097D:
		return Consonant, NoPlacement // Glottal Stop
	case 0x097E:
		return Consonant, NoPlacement // Ddda
	case 0x097F:
		return Consonant, NoPlacement // Bba

	// Bengali
	case 0x0980:
		return None, NoPlacement // Anji
	case 0x0981:
		return Bindu, TopPosition // Candrabindu
	case 0x0982:
		return Bindu, RightPosition // Anusvara
	case 0x0983:
		return Visarga, RightPosition // Visarga
	case 0x0984:
		return None, NoPlacement // unassigned
	case 0x0985:
		return VowelIndependent, NoPlacement // A
	case 0x0986:
		return VowelIndependent, NoPlacement // Aa
	case 0x0987:
		return VowelIndependent, NoPlacement // I
	case 0x0988:
		return VowelIndependent, NoPlacement // Ii
	case 0x0989:
		return VowelIndependent, NoPlacement // U
	case 0x098A:
		return VowelIndependent, NoPlacement // Uu
	case 0x098B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x098C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x098D:
		return None, NoPlacement // unassigned
	case 0x098E:
		return None, NoPlacement // unassigned
	case 0x098F:
		return VowelIndependent, NoPlacement // E
	case 0x0990:
		return VowelIndependent, NoPlacement // Ai
	case 0x0991:
		return None, NoPlacement // unassigned
	case 0x0992:
		return None, NoPlacement // unassigned
	case 0x0993:
		return VowelIndependent, NoPlacement // O
	case 0x0994:
		return VowelIndependent, NoPlacement // Au
	case 0x0995:
		return Consonant, NoPlacement // Ka
	case 0x0996:
		return Consonant, NoPlacement // Kha
	case 0x0997:
		return Consonant, NoPlacement // Ga
	case 0x0998:
		return Consonant, NoPlacement // Gha
	case 0x0999:
		return Consonant, NoPlacement // Nga
	case 0x099A:
		return Consonant, NoPlacement // Ca
	case 0x099B:
		return Consonant, NoPlacement // Cha
	case 0x099C:
		return Consonant, NoPlacement // Ja
	case 0x099D:
		return Consonant, NoPlacement // Jha
	case 0x099E:
		return Consonant, NoPlacement // Nya
	case 0x099F:
		return Consonant, NoPlacement // Tta
	case 0x09A0:
		return Consonant, NoPlacement // Ttha
	case 0x09A1:
		return Consonant, NoPlacement // Dda
	case 0x09A2:
		return Consonant, NoPlacement // Ddha
	case 0x09A3:
		return Consonant, NoPlacement // Nna
	case 0x09A4:
		return Consonant, NoPlacement // Ta
	case 0x09A5:
		return Consonant, NoPlacement // Tha
	case 0x09A6:
		return Consonant, NoPlacement // Da
	case 0x09A7:
		return Consonant, NoPlacement // Dha
	case 0x09A8:
		return Consonant, NoPlacement // Na
	case 0x09A9:
		return None, NoPlacement // unassigned
	case 0x09AA:
		return Consonant, NoPlacement // Pa
	case 0x09AB:
		return Consonant, NoPlacement // Pha
	case 0x09AC:
		return Consonant, NoPlacement // Ba
	case 0x09AD:
		return Consonant, NoPlacement // Bha
	case 0x09AE:
		return Consonant, NoPlacement // Ma
	case 0x09AF:
		return Consonant, NoPlacement // Ya
	case 0x09B0:
		return Consonant, NoPlacement // Ra
	case 0x09B1:
		return None, NoPlacement // unassigned
	case 0x09B2:
		return Consonant, NoPlacement // La
	case 0x09B3:
		return None, NoPlacement // unassigned
	case 0x09B4:
		return None, NoPlacement // unassigned
	case 0x09B5:
		return None, NoPlacement // unassigned
	case 0x09B6:
		return Consonant, NoPlacement // Sha
	case 0x09B7:
		return Consonant, NoPlacement // Ssa
	case 0x09B8:
		return Consonant, NoPlacement // Sa
	case 0x09B9:
		return Consonant, NoPlacement // Ha
	case 0x09BA:
		return None, NoPlacement // unassigned
	case 0x09BB:
		return None, NoPlacement // unassigned
	case 0x09BC:
		return Nukta, BottomPosition // Nukta
	case 0x09BD:
		return Avagraha, NoPlacement // Avagraha
	case 0x09BE:
		return VowelDependent, RightPosition // Sign Aa
	case 0x09BF:
		return VowelDependent, LeftPosition // Sign I
	case 0x09C0:
		return VowelDependent, RightPosition // Sign Ii
	case 0x09C1:
		return VowelDependent, BottomPosition // Sign U
	case 0x09C2:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x09C3:
		return VowelDependent, BottomPosition // Sign Vocalic R
	case 0x09C4:
		return VowelDependent, BottomPosition // Sign Vocalic Rr
	case 0x09C5:
		return None, NoPlacement // unassigned
	case 0x09C6:
		return None, NoPlacement // unassigned
	case 0x09C7:
		return VowelDependent, LeftPosition // Sign E
	case 0x09C8:
		return VowelDependent, LeftPosition // Sign Ai
	case 0x09C9:
		return None, NoPlacement // unassigned
	case 0x09CA:
		return None, NoPlacement // unassigned
	case 0x09CB:
		return VowelDependent, LeftAndRightPosition // Sign O
	case 0x09CC:
		return VowelDependent, LeftAndRightPosition // Sign Au
	case 0x09CD:
		return Virama, BottomPosition // Virama
	case 0x09CE:
		return ConsonantDead, NoPlacement // Khanda Ta
	case 0x09CF:
		return None, NoPlacement // unassigned
	case 0x09D0:
		return None, NoPlacement // unassigned
	case 0x09D1:
		return None, NoPlacement // unassigned
	case 0x09D2:
		return None, NoPlacement // unassigned
	case 0x09D3:
		return None, NoPlacement // unassigned
	case 0x09D4:
		return None, NoPlacement // unassigned
	case 0x09D5:
		return None, NoPlacement // unassigned
	case 0x09D6:
		return None, NoPlacement // unassigned
	case 0x09D7:
		return VowelDependent, RightPosition // Au Length Mark
	case 0x09D8:
		return None, NoPlacement // unassigned
	case 0x09D9:
		return None, NoPlacement // unassigned
	case 0x09DA:
		return None, NoPlacement // unassigned
	case 0x09DB:
		return None, NoPlacement // unassigned
	case 0x09DC:
		return Consonant, NoPlacement // Rra
	case 0x09DD:
		return Consonant, NoPlacement // Rha
	case 0x09DE:
		return None, NoPlacement // unassigned
	case 0x09DF:
		return Consonant, NoPlacement // Yya
	case 0x09E0:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x09E1:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x09E2:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x09E3:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x09E4:
		return None, NoPlacement // unassigned
	case 0x09E5:
		return None, NoPlacement // unassigned
	case 0x09E6:
		return Number, NoPlacement // Digit Zero
	case 0x09E7:
		return Number, NoPlacement // Digit One
	case 0x09E8:
		return Number, NoPlacement // Digit Two
	case 0x09E9:
		return Number, NoPlacement // Digit Three
	case 0x09EA:
		return Number, NoPlacement // Digit Four
	case 0x09EB:
		return Number, NoPlacement // Digit Five
	case 0x09EC:
		return Number, NoPlacement // Digit Six
	case 0x09ED:
		return Number, NoPlacement // Digit Seven
	case 0x09EE:
		return Number, NoPlacement // Digit Eight
	case 0x09EF:
		return Number, NoPlacement // Digit Nine
	case 0x09F0:
		return Consonant, NoPlacement // Assamese Ra
	case 0x09F1:
		return Consonant, NoPlacement // Assamese Wa
	case 0x09F2:
		return Symbol, NoPlacement // Rupee Mark
	case 0x09F3:
		return Symbol, NoPlacement // Rupee Sign
	case 0x09F4:
		return Number, NoPlacement // Numerator One
	case 0x09F5:
		return Number, NoPlacement // Numerator Two
	case 0x09F6:
		return Number, NoPlacement // Numerator Three
	case 0x09F7:
		return Number, NoPlacement // Numerator Four
	case 0x09F8:
		return Number, NoPlacement // Numerator One Less Than Denominator
	case 0x09F9:
		return Number, NoPlacement // Denominator Sixteen
	case 0x09FA:
		return Symbol, NoPlacement // Isshar
	case 0x09FB:
		return Symbol, NoPlacement // Ganda Mark
	case 0x09FC:
		return None, NoPlacement // Vedic Anusvara
	case 0x09FD:
		return None, NoPlacement // Abbreviation Sign

	// Gurmukhi
	case 0x0A00:
		return None, NoPlacement // unassigned
	case 0x0A01:
		return Bindu, TopPosition // Adak Bindi
	case 0x0A02:
		return Bindu, TopPosition // Bindi
	case 0x0A03:
		return Visarga, RightPosition // Visarga
	case 0x0A04:
		return None, NoPlacement // unassigned
	case 0x0A05:
		return VowelIndependent, NoPlacement // A
	case 0x0A06:
		return VowelIndependent, NoPlacement // Aa
	case 0x0A07:
		return VowelIndependent, NoPlacement // I
	case 0x0A08:
		return VowelIndependent, NoPlacement // Ii
	case 0x0A09:
		return VowelIndependent, NoPlacement // U
	case 0x0A0A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0A0B:
		return None, NoPlacement // unassigned
	case 0x0A0C:
		return None, NoPlacement // unassigned
	case 0x0A0D:
		return None, NoPlacement // unassigned
	case 0x0A0E:
		return None, NoPlacement // unassigned
	case 0x0A0F:
		return VowelIndependent, NoPlacement // Ee
	case 0x0A10:
		return VowelIndependent, NoPlacement // Ai
	case 0x0A11:
		return None, NoPlacement // unassigned
	case 0x0A12:
		return None, NoPlacement // unassigned
	case 0x0A13:
		return VowelIndependent, NoPlacement // Oo
	case 0x0A14:
		return VowelIndependent, NoPlacement // Au
	case 0x0A15:
		return Consonant, NoPlacement // Ka
	case 0x0A16:
		return Consonant, NoPlacement // Kha
	case 0x0A17:
		return Consonant, NoPlacement // Ga
	case 0x0A18:
		return Consonant, NoPlacement // Gha
	case 0x0A19:
		return Consonant, NoPlacement // Nga
	case 0x0A1A:
		return Consonant, NoPlacement // Ca
	case 0x0A1B:
		return Consonant, NoPlacement // Cha
	case 0x0A1C:
		return Consonant, NoPlacement // Ja
	case 0x0A1D:
		return Consonant, NoPlacement // Jha
	case 0x0A1E:
		return Consonant, NoPlacement // Nya
	case 0x0A1F:
		return Consonant, NoPlacement // Tta
	case 0x0A20:
		return Consonant, NoPlacement // Ttha
	case 0x0A21:
		return Consonant, NoPlacement // Dda
	case 0x0A22:
		return Consonant, NoPlacement // Ddha
	case 0x0A23:
		return Consonant, NoPlacement // Nna
	case 0x0A24:
		return Consonant, NoPlacement // Ta
	case 0x0A25:
		return Consonant, NoPlacement // Tha
	case 0x0A26:
		return Consonant, NoPlacement // Da
	case 0x0A27:
		return Consonant, NoPlacement // Dha
	case 0x0A28:
		return Consonant, NoPlacement // Na
	case 0x0A29:
		return None, NoPlacement // unassigned
	case 0x0A2A:
		return Consonant, NoPlacement // Pa
	case 0x0A2B:
		return Consonant, NoPlacement // Pha
	case 0x0A2C:
		return Consonant, NoPlacement // Ba
	case 0x0A2D:
		return Consonant, NoPlacement // Bha
	case 0x0A2E:
		return Consonant, NoPlacement // Ma
	case 0x0A2F:
		return Consonant, NoPlacement // Ya
	case 0x0A30:
		return Consonant, NoPlacement // Ra
	case 0x0A31:
		return None, NoPlacement // unassigned
	case 0x0A32:
		return Consonant, NoPlacement // La
	case 0x0A33:
		return Consonant, NoPlacement // Lla
	case 0x0A34:
		return None, NoPlacement // unassigned
	case 0x0A35:
		return Consonant, NoPlacement // Va
	case 0x0A36:
		return Consonant, NoPlacement // Sha
	case 0x0A37:
		return None, NoPlacement // unassigned
	case 0x0A38:
		return Consonant, NoPlacement // Sa
	case 0x0A39:
		return Consonant, NoPlacement // Ha
	case 0x0A3A:
		return None, NoPlacement // unassigned
	case 0x0A3B:
		return None, NoPlacement // unassigned
	case 0x0A3C:
		return Nukta, BottomPosition // Nukta
	case 0x0A3D:
		return None, NoPlacement // unassigned
	case 0x0A3E:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0A3F:
		return VowelDependent, LeftPosition // Sign I
	case 0x0A40:
		return VowelDependent, RightPosition // Sign Ii
	case 0x0A41:
		return VowelDependent, BottomPosition // Sign U
	case 0x0A42:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x0A43:
		return None, NoPlacement // unassigned
	case 0x0A44:
		return None, NoPlacement // unassigned
	case 0x0A45:
		return None, NoPlacement // unassigned
	case 0x0A46:
		return None, NoPlacement // unassigned
	case 0x0A47:
		return VowelDependent, TopPosition // Sign Ee
	case 0x0A48:
		return VowelDependent, TopPosition // Sign Ai
	case 0x0A49:
		return None, NoPlacement // unassigned
	case 0x0A4A:
		return None, NoPlacement // unassigned
	case 0x0A4B:
		return VowelDependent, TopPosition // Sign Oo
	case 0x0A4C:
		return VowelDependent, TopPosition // Sign Au
	case 0x0A4D:
		return Virama, BottomPosition // Virama
	case 0x0A4E:
		return None, NoPlacement // unassigned
	case 0x0A4F:
		return None, NoPlacement // unassigned
	case 0x0A50:
		return None, NoPlacement // unassigned
	case 0x0A51:
		return None, NoPlacement // Udaat
	case 0x0A52:
		return None, NoPlacement // unassigned
	case 0x0A53:
		return None, NoPlacement // unassigned
	case 0x0A54:
		return None, NoPlacement // unassigned
	case 0x0A55:
		return None, NoPlacement // unassigned
	case 0x0A56:
		return None, NoPlacement // unassigned
	case 0x0A57:
		return None, NoPlacement // unassigned
	case 0x0A58:
		return None, NoPlacement // unassigned
	case 0x0A59:
		return Consonant, NoPlacement // Khha
	case 0x0A5A:
		return Consonant, NoPlacement // Ghha
	case 0x0A5B:
		return Consonant, NoPlacement // Za
	case 0x0A5C:
		return Consonant, NoPlacement // Rra
	case 0x0A5D:
		return None, NoPlacement // unassigned
	case 0x0A5E:
		return Consonant, NoPlacement // Fa
	case 0x0A5F:
		return None, NoPlacement // unassigned
	case 0x0A60:
		return None, NoPlacement // unassigned
	case 0x0A61:
		return None, NoPlacement // unassigned
	case 0x0A62:
		return None, NoPlacement // unassigned
	case 0x0A63:
		return None, NoPlacement // unassigned
	case 0x0A64:
		return None, NoPlacement // unassigned
	case 0x0A65:
		return None, NoPlacement // unassigned
	case 0x0A66:
		return Number, NoPlacement // Digit Zero
	case 0x0A67:
		return Number, NoPlacement // Digit One
	case 0x0A68:
		return Number, NoPlacement // Digit Two
	case 0x0A69:
		return Number, NoPlacement // Digit Three
	case 0x0A6A:
		return Number, NoPlacement // Digit Four
	case 0x0A6B:
		return Number, NoPlacement // Digit Five
	case 0x0A6C:
		return Number, NoPlacement // Digit Six
	case 0x0A6D:
		return Number, NoPlacement // Digit Seven
	case 0x0A6E:
		return Number, NoPlacement // Digit Eight
	case 0x0A6F:
		return Number, NoPlacement // Digit Nine
	case 0x0A70:
		return Bindu, TopPosition // Tippi
	case 0x0A71:
		return GeminationMark, TopPosition // Addak
	case 0x0A72:
		return ConsonantPlaceholder, NoPlacement // Iri
	case 0x0A73:
		return ConsonantPlaceholder, NoPlacement // Ura
	case 0x0A74:
		return None, NoPlacement // Ek Onkar
	case 0x0A75:
		return ConsonantMedial, BottomPosition // Yakash

	// Gujarati
	case 0x0A81:
		return Bindu, TopPosition // Candrabindu
	case 0x0A82:
		return Bindu, TopPosition // Anusvara
	case 0x0A83:
		return Visarga, RightPosition // Visarga
	case 0x0A84:
		return None, NoPlacement // unassigned
	case 0x0A85:
		return VowelIndependent, NoPlacement // A
	case 0x0A86:
		return VowelIndependent, NoPlacement // Aa
	case 0x0A87:
		return VowelIndependent, NoPlacement // I
	case 0x0A88:
		return VowelIndependent, NoPlacement // Ii
	case 0x0A89:
		return VowelIndependent, NoPlacement // U
	case 0x0A8A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0A8B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0A8C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0A8D:
		return VowelIndependent, NoPlacement // Candra E
	case 0x0A8E:
		return None, NoPlacement // unassigned
	case 0x0A8F:
		return VowelIndependent, NoPlacement // E
	case 0x0A90:
		return VowelIndependent, NoPlacement // Ai
	case 0x0A91:
		return VowelIndependent, NoPlacement // Candra O
	case 0x0A92:
		return None, NoPlacement // unassigned
	case 0x0A93:
		return VowelIndependent, NoPlacement // O
	case 0x0A94:
		return VowelIndependent, NoPlacement // Au
	case 0x0A95:
		return Consonant, NoPlacement // Ka
	case 0x0A96:
		return Consonant, NoPlacement // Kha
	case 0x0A97:
		return Consonant, NoPlacement // Ga
	case 0x0A98:
		return Consonant, NoPlacement // Gha
	case 0x0A99:
		return Consonant, NoPlacement // Nga
	case 0x0A9A:
		return Consonant, NoPlacement // Ca
	case 0x0A9B:
		return Consonant, NoPlacement // Cha
	case 0x0A9C:
		return Consonant, NoPlacement // Ja
	case 0x0A9D:
		return Consonant, NoPlacement // Jha
	case 0x0A9E:
		return Consonant, NoPlacement // Nya
	case 0x0A9F:
		return Consonant, NoPlacement // Tta
	case 0x0AA0:
		return Consonant, NoPlacement // Ttha
	case 0x0AA1:
		return Consonant, NoPlacement // Dda
	case 0x0AA2:
		return Consonant, NoPlacement // Ddha
	case 0x0AA3:
		return Consonant, NoPlacement // Nna
	case 0x0AA4:
		return Consonant, NoPlacement // Ta
	case 0x0AA5:
		return Consonant, NoPlacement // Tha
	case 0x0AA6:
		return Consonant, NoPlacement // Da
	case 0x0AA7:
		return Consonant, NoPlacement // Dha
	case 0x0AA8:
		return Consonant, NoPlacement // Na
	case 0x0AA9:
		return None, NoPlacement // unassigned
	case 0x0AAA:
		return Consonant, NoPlacement // Pa
	case 0x0AAB:
		return Consonant, NoPlacement // Pha
	case 0x0AAC:
		return Consonant, NoPlacement // Ba
	case 0x0AAD:
		return Consonant, NoPlacement // Bha
	case 0x0AAE:
		return Consonant, NoPlacement // Ma
	case 0x0AAF:
		return Consonant, NoPlacement // Ya
	case 0x0AB0:
		return Consonant, NoPlacement // Ra
	case 0x0AB1:
		return None, NoPlacement // unassigned
	case 0x0AB2:
		return Consonant, NoPlacement // La
	case 0x0AB3:
		return Consonant, NoPlacement // Lla
	case 0x0AB4:
		return None, NoPlacement // unassigned
	case 0x0AB5:
		return Consonant, NoPlacement // Va
	case 0x0AB6:
		return Consonant, NoPlacement // Sha
	case 0x0AB7:
		return Consonant, NoPlacement // Ssa
	case 0x0AB8:
		return Consonant, NoPlacement // Sa
	case 0x0AB9:
		return Consonant, NoPlacement // Ha
	case 0x0ABA:
		return None, NoPlacement // unassigned
	case 0x0ABB:
		return None, NoPlacement // unassigned
	case 0x0ABC:
		return Nukta, BottomPosition // Nukta
	case 0x0ABD:
		return Avagraha, NoPlacement // Avagraha
	case 0x0ABE:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0ABF:
		return VowelDependent, LeftPosition // Sign I
	case 0x0AC0:
		return VowelDependent, RightPosition // Sign Ii
	case 0x0AC1:
		return VowelDependent, BottomPosition // Sign U
	case 0x0AC2:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x0AC3:
		return VowelDependent, BottomPosition // Sign Vocalic R
	case 0x0AC4:
		return VowelDependent, BottomPosition // Sign Vocalic Rr
	case 0x0AC5:
		return VowelDependent, TopPosition // Sign Candra E
	case 0x0AC6:
		return None, NoPlacement // unassigned
	case 0x0AC7:
		return VowelDependent, TopPosition // Sign E
	case 0x0AC8:
		return VowelDependent, TopPosition // Sign Ai
	case 0x0AC9:
		return VowelDependent, TopAndRightPosition // Sign Candra O
	case 0x0ACA:
		return None, NoPlacement // unassigned
	case 0x0ACB:
		return VowelDependent, RightPosition // Sign O
	case 0x0ACC:
		return VowelDependent, RightPosition // Sign Au
	case 0x0ACD:
		return Virama, BottomPosition // Virama
	case 0x0ACE:
		return None, NoPlacement // unassigned
	case 0x0ACF:
		return None, NoPlacement // unassigned
	case 0x0AD0:
		return None, NoPlacement // Om
	case 0x0AD1:
		return None, NoPlacement // unassigned
	case 0x0AD2:
		return None, NoPlacement // unassigned
	case 0x0AD3:
		return None, NoPlacement // unassigned
	case 0x0AD4:
		return None, NoPlacement // unassigned
	case 0x0AD5:
		return None, NoPlacement // unassigned
	case 0x0AD6:
		return None, NoPlacement // unassigned
	case 0x0AD7:
		return None, NoPlacement // unassigned
	case 0x0AD8:
		return None, NoPlacement // unassigned
	case 0x0AD9:
		return None, NoPlacement // unassigned
	case 0x0ADA:
		return None, NoPlacement // unassigned
	case 0x0ADB:
		return None, NoPlacement // unassigned
	case 0x0ADC:
		return None, NoPlacement // unassigned
	case 0x0ADD:
		return None, NoPlacement // unassigned
	case 0x0ADE:
		return None, NoPlacement // unassigned
	case 0x0ADF:
		return None, NoPlacement // unassigned
	case 0x0AE0:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0AE1:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0AE2:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0AE3:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0AE4:
		return None, NoPlacement // unassigned
	case 0x0AE5:
		return None, NoPlacement // unassigned
	case 0x0AE6:
		return Number, NoPlacement // Digit Zero
	case 0x0AE7:
		return Number, NoPlacement // Digit One
	case 0x0AE8:
		return Number, NoPlacement // Digit Two
	case 0x0AE9:
		return Number, NoPlacement // Digit Three
	case 0x0AEA:
		return Number, NoPlacement // Digit Four
	case 0x0AEB:
		return Number, NoPlacement // Digit Five
	case 0x0AEC:
		return Number, NoPlacement // Digit Six
	case 0x0AED:
		return Number, NoPlacement // Digit Seven
	case 0x0AEE:
		return Number, NoPlacement // Digit Eight
	case 0x0AEF:
		return Number, NoPlacement // Digit Nine
	case 0x0AF0:
		return Symbol, NoPlacement // Abbreviation
	case 0x0AF1:
		return Symbol, NoPlacement // Rupee Sign
	case 0x0AF2:
		return None, NoPlacement // unassigned
	case 0x0AF3:
		return None, NoPlacement // unassigned
	case 0x0AF4:
		return None, NoPlacement // unassigned
	case 0x0AF5:
		return None, NoPlacement // unassigned
	case 0x0AF6:
		return None, NoPlacement // unassigned
	case 0x0AF7:
		return None, NoPlacement // unassigned
	case 0x0AF8:
		return None, NoPlacement // unassigned
	case 0x0AF9:
		return Consonant, NoPlacement // Zha
	case 0x0AFA:
		return Cantillation, TopPosition // Sukun
	case 0x0AFB:
		return Cantillation, TopPosition // Shadda
	case 0x0AFC:
		return Cantillation, TopPosition // Maddah
	case 0x0AFD:
		return Nukta, TopPosition // Three-Dot Nukta Above
	case 0x0AFE:
		return Nukta, TopPosition // Circle Nukta Above
	case 0x0AFF:
		return Nukta, TopPosition // Two-Circle Nukta Above

	// Oriya
	case 0x0B00:
		return None, NoPlacement // unassigned
	case 0x0B01:
		return Bindu, TopPosition // Candrabindu
	case 0x0B02:
		return Bindu, RightPosition // Anusvara
	case 0x0B03:
		return Visarga, RightPosition // Visarga
	case 0x0B04:
		return None, NoPlacement // unassigned
	case 0x0B05:
		return VowelIndependent, NoPlacement // A
	case 0x0B06:
		return VowelIndependent, NoPlacement // Aa
	case 0x0B07:
		return VowelIndependent, NoPlacement // I
	case 0x0B08:
		return VowelIndependent, NoPlacement // Ii
	case 0x0B09:
		return VowelIndependent, NoPlacement // U
	case 0x0B0A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0B0B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0B0C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0B0D:
		return None, NoPlacement // unassigned
	case 0x0B0E:
		return None, NoPlacement // unassigned
	case 0x0B0F:
		return VowelIndependent, NoPlacement // E
	case 0x0B10:
		return VowelIndependent, NoPlacement // Ai
	case 0x0B11:
		return None, NoPlacement // unassigned
	case 0x0B12:
		return None, NoPlacement // unassigned
	case 0x0B13:
		return VowelIndependent, NoPlacement // O
	case 0x0B14:
		return VowelIndependent, NoPlacement // Au
	case 0x0B15:
		return Consonant, NoPlacement // Ka
	case 0x0B16:
		return Consonant, NoPlacement // Kha
	case 0x0B17:
		return Consonant, NoPlacement // Ga
	case 0x0B18:
		return Consonant, NoPlacement // Gha
	case 0x0B19:
		return Consonant, NoPlacement // Nga
	case 0x0B1A:
		return Consonant, NoPlacement // Ca
	case 0x0B1B:
		return Consonant, NoPlacement // Cha
	case 0x0B1C:
		return Consonant, NoPlacement // Ja
	case 0x0B1D:
		return Consonant, NoPlacement // Jha
	case 0x0B1E:
		return Consonant, NoPlacement // Nya
	case 0x0B1F:
		return Consonant, NoPlacement // Tta
	case 0x0B20:
		return Consonant, NoPlacement // Ttha
	case 0x0B21:
		return Consonant, NoPlacement // Dda
	case 0x0B22:
		return Consonant, NoPlacement // Ddha
	case 0x0B23:
		return Consonant, NoPlacement // Nna
	case 0x0B24:
		return Consonant, NoPlacement // Ta
	case 0x0B25:
		return Consonant, NoPlacement // Tha
	case 0x0B26:
		return Consonant, NoPlacement // Da
	case 0x0B27:
		return Consonant, NoPlacement // Dha
	case 0x0B28:
		return Consonant, NoPlacement // Na
	case 0x0B29:
		return None, NoPlacement // unassigned
	case 0x0B2A:
		return Consonant, NoPlacement // Pa
	case 0x0B2B:
		return Consonant, NoPlacement // Pha
	case 0x0B2C:
		return Consonant, NoPlacement // Ba
	case 0x0B2D:
		return Consonant, NoPlacement // Bha
	case 0x0B2E:
		return Consonant, NoPlacement // Ma
	case 0x0B2F:
		return Consonant, NoPlacement // Ya
	case 0x0B30:
		return Consonant, NoPlacement // Ra
	case 0x0B31:
		return None, NoPlacement // unassigned
	case 0x0B32:
		return Consonant, NoPlacement // La
	case 0x0B33:
		return Consonant, NoPlacement // Lla
	case 0x0B34:
		return None, NoPlacement // unassigned
	case 0x0B35:
		return Consonant, NoPlacement // Va
	case 0x0B36:
		return Consonant, NoPlacement // Sha
	case 0x0B37:
		return Consonant, NoPlacement // Ssa
	case 0x0B38:
		return Consonant, NoPlacement // Sa
	case 0x0B39:
		return Consonant, NoPlacement // Ha
	case 0x0B3A:
		return None, NoPlacement // unassigned
	case 0x0B3B:
		return None, NoPlacement // unassigned
	case 0x0B3C:
		return Nukta, BottomPosition // Nukta
	case 0x0B3D:
		return Avagraha, NoPlacement // Avagraha
	case 0x0B3E:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0B3F:
		return VowelDependent, TopPosition // Sign I
	case 0x0B40:
		return VowelDependent, RightPosition // Sign Ii
	case 0x0B41:
		return VowelDependent, BottomPosition // Sign U
	case 0x0B42:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x0B43:
		return VowelDependent, BottomPosition // Sign Vocalic R
	case 0x0B44:
		return VowelDependent, BottomPosition // Sign Vocalic Rr
	case 0x0B45:
		return None, NoPlacement // unassigned
	case 0x0B46:
		return None, NoPlacement // unassigned
	case 0x0B47:
		return VowelDependent, LeftPosition // Sign E
	case 0x0B48:
		return VowelDependent, TopAndLeftPosition // Sign Ai
	case 0x0B49:
		return None, NoPlacement // unassigned
	case 0x0B4A:
		return None, NoPlacement // unassigned
	case 0x0B4B:
		return VowelDependent, LeftAndRightPosition // Sign O
	case 0x0B4C:
		return VowelDependent, TopLeftAndRightPosition // Sign Au
	case 0x0B4D:
		return Virama, BottomPosition // Virama
	case 0x0B4E:
		return None, NoPlacement // unassigned
	case 0x0B4F:
		return None, NoPlacement // unassigned
	case 0x0B50:
		return None, NoPlacement // unassigned
	case 0x0B51:
		return None, NoPlacement // unassigned
	case 0x0B52:
		return None, NoPlacement // unassigned
	case 0x0B53:
		return None, NoPlacement // unassigned
	case 0x0B54:
		return None, NoPlacement // unassigned
	case 0x0B55:
		return None, NoPlacement // unassigned
	case 0x0B56:
		return VowelDependent, TopPosition // Ai Length Mark
	case 0x0B57:
		return VowelDependent, TopAndRightPosition // Au Length Mark
	case 0x0B58:
		return None, NoPlacement // unassigned
	case 0x0B59:
		return None, NoPlacement // unassigned
	case 0x0B5A:
		return None, NoPlacement // unassigned
	case 0x0B5B:
		return None, NoPlacement // unassigned
	case 0x0B5C:
		return Consonant, NoPlacement // Rra
	case 0x0B5D:
		return Consonant, NoPlacement // Rha
	case 0x0B5E:
		return None, NoPlacement // unassigned
	case 0x0B5F:
		return Consonant, NoPlacement // Yya
	case 0x0B60:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0B61:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0B62:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0B63:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0B64:
		return None, NoPlacement // unassigned
	case 0x0B65:
		return None, NoPlacement // unassigned
	case 0x0B66:
		return Number, NoPlacement // Digit Zero
	case 0x0B67:
		return Number, NoPlacement // Digit One
	case 0x0B68:
		return Number, NoPlacement // Digit Two
	case 0x0B69:
		return Number, NoPlacement // Digit Three
	case 0x0B6A:
		return Number, NoPlacement // Digit Four
	case 0x0B6B:
		return Number, NoPlacement // Digit Five
	case 0x0B6C:
		return Number, NoPlacement // Digit Six
	case 0x0B6D:
		return Number, NoPlacement // Digit Seven
	case 0x0B6E:
		return Number, NoPlacement // Digit Eight
	case 0x0B6F:
		return Number, NoPlacement // Digit Nine
	case 0x0B70:
		return Symbol, NoPlacement // Isshar
	case 0x0B71:
		return Consonant, NoPlacement // Wa
	case 0x0B72:
		return Number, NoPlacement // Fraction 1/4
	case 0x0B73:
		return Number, NoPlacement // Fraction 1/2
	case 0x0B74:
		return Number, NoPlacement // Fraction 3/4
	case 0x0B75:
		return Number, NoPlacement // Fraction 1/16
	case 0x0B76:
		return Number, NoPlacement // Fraction 1/8
	case 0x0B77:
		return Number, NoPlacement // Fraction 3/16
	case 0x0B78:
		return None, NoPlacement // unassigned
	case 0x0B79:
		return None, NoPlacement // unassigned
	case 0x0B7A:
		return None, NoPlacement // unassigned
	case 0x0B7B:
		return None, NoPlacement // unassigned
	case 0x0B7C:
		return None, NoPlacement // unassigned
	case 0x0B7D:
		return None, NoPlacement // unassigned
	case 0x0B7E:
		return None, NoPlacement // unassigned
	case 0x0B7F:
		return None, NoPlacement // unassigned

	// Tamil
	case 0x0B80:
		return None, NoPlacement // unassigned
	case 0x0B81:
		return None, NoPlacement // unassigned
	case 0x0B82:
		return Bindu, TopPosition // Anusvara
	case 0x0B83:
		return ModifyingLetter, NoPlacement // Visarga
	case 0x0B84:
		return None, NoPlacement // unassigned
	case 0x0B85:
		return VowelIndependent, NoPlacement // A
	case 0x0B86:
		return VowelIndependent, NoPlacement // Aa
	case 0x0B87:
		return VowelIndependent, NoPlacement // I
	case 0x0B88:
		return VowelIndependent, NoPlacement // Ii
	case 0x0B89:
		return VowelIndependent, NoPlacement // U
	case 0x0B8A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0B8B:
		return None, NoPlacement // unassigned
	case 0x0B8C:
		return None, NoPlacement // unassigned
	case 0x0B8D:
		return None, NoPlacement // unassigned
	case 0x0B8E:
		return VowelIndependent, NoPlacement // E
	case 0x0B8F:
		return VowelIndependent, NoPlacement // Ee
	case 0x0B90:
		return VowelIndependent, NoPlacement // Ai
	case 0x0B91:
		return None, NoPlacement // unassigned
	case 0x0B92:
		return VowelIndependent, NoPlacement // O
	case 0x0B93:
		return VowelIndependent, NoPlacement // Oo
	case 0x0B94:
		return VowelIndependent, NoPlacement // Au
	case 0x0B95:
		return Consonant, NoPlacement // Ka
	case 0x0B96:
		return None, NoPlacement // unassigned
	case 0x0B97:
		return None, NoPlacement // unassigned
	case 0x0B98:
		return None, NoPlacement // unassigned
	case 0x0B99:
		return Consonant, NoPlacement // Nga
	case 0x0B9A:
		return Consonant, NoPlacement // Ca
	case 0x0B9B:
		return None, NoPlacement // unassigned
	case 0x0B9C:
		return Consonant, NoPlacement // Ja
	case 0x0B9D:
		return None, NoPlacement // unassigned
	case 0x0B9E:
		return Consonant, NoPlacement // Nya
	case 0x0B9F:
		return Consonant, NoPlacement // Tta
	case 0x0BA0:
		return None, NoPlacement // unassigned
	case 0x0BA1:
		return None, NoPlacement // unassigned
	case 0x0BA2:
		return None, NoPlacement // unassigned
	case 0x0BA3:
		return Consonant, NoPlacement // Nna
	case 0x0BA4:
		return Consonant, NoPlacement // Ta
	case 0x0BA5:
		return None, NoPlacement // unassigned
	case 0x0BA6:
		return None, NoPlacement // unassigned
	case 0x0BA7:
		return None, NoPlacement // unassigned
	case 0x0BA8:
		return Consonant, NoPlacement // Na
	case 0x0BA9:
		return Consonant, NoPlacement // Nnna
	case 0x0BAA:
		return Consonant, NoPlacement // Pa
	case 0x0BAB:
		return None, NoPlacement // unassigned
	case 0x0BAC:
		return None, NoPlacement // unassigned
	case 0x0BAD:
		return None, NoPlacement // unassigned
	case 0x0BAE:
		return Consonant, NoPlacement // Ma
	case 0x0BAF:
		return Consonant, NoPlacement // Ya
	case 0x0BB0:
		return Consonant, NoPlacement // Ra
	case 0x0BB1:
		return Consonant, NoPlacement // Rra
	case 0x0BB2:
		return Consonant, NoPlacement // La
	case 0x0BB3:
		return Consonant, NoPlacement // Lla
	case 0x0BB4:
		return Consonant, NoPlacement // Llla
	case 0x0BB5:
		return Consonant, NoPlacement // Va
	case 0x0BB6:
		return Consonant, NoPlacement // Sha
	case 0x0BB7:
		return Consonant, NoPlacement // Ssa
	case 0x0BB8:
		return Consonant, NoPlacement // Sa
	case 0x0BB9:
		return Consonant, NoPlacement // Ha
	case 0x0BBA:
		return None, NoPlacement // unassigned
	case 0x0BBB:
		return None, NoPlacement // unassigned
	case 0x0BBC:
		return None, NoPlacement // unassigned
	case 0x0BBD:
		return None, NoPlacement // unassigned
	case 0x0BBE:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0BBF:
		return VowelDependent, RightPosition // Sign I
	case 0x0BC0:
		return VowelDependent, TopPosition // Sign Ii
	case 0x0BC1:
		return VowelDependent, RightPosition // Sign U
	case 0x0BC2:
		return VowelDependent, RightPosition // Sign Uu
	case 0x0BC3:
		return None, NoPlacement // unassigned
	case 0x0BC4:
		return None, NoPlacement // unassigned
	case 0x0BC5:
		return None, NoPlacement // unassigned
	case 0x0BC6:
		return VowelDependent, LeftPosition // Sign E
	case 0x0BC7:
		return VowelDependent, LeftPosition // Sign Ee
	case 0x0BC8:
		return VowelDependent, LeftPosition // Sign Ai
	case 0x0BC9:
		return None, NoPlacement // unassigned
	case 0x0BCA:
		return VowelDependent, LeftAndRightPosition // Sign O
	case 0x0BCB:
		return VowelDependent, LeftAndRightPosition // Sign Oo
	case 0x0BCC:
		return VowelDependent, LeftAndRightPosition // Sign Au
	case 0x0BCD:
		return Virama, TopPosition // Virama
	case 0x0BCE:
		return None, NoPlacement // unassigned
	case 0x0BCF:
		return None, NoPlacement // unassigned
	case 0x0BD0:
		return None, NoPlacement // Om
	case 0x0BD1:
		return None, NoPlacement // unassigned
	case 0x0BD2:
		return None, NoPlacement // unassigned
	case 0x0BD3:
		return None, NoPlacement // unassigned
	case 0x0BD4:
		return None, NoPlacement // unassigned
	case 0x0BD5:
		return None, NoPlacement // unassigned
	case 0x0BD6:
		return None, NoPlacement // unassigned
	case 0x0BD7:
		return VowelDependent, RightPosition // Au Length Mark
	case 0x0BD8:
		return None, NoPlacement // unassigned
	case 0x0BD9:
		return None, NoPlacement // unassigned
	case 0x0BDA:
		return None, NoPlacement // unassigned
	case 0x0BDB:
		return None, NoPlacement // unassigned
	case 0x0BDC:
		return None, NoPlacement // unassigned
	case 0x0BDD:
		return None, NoPlacement // unassigned
	case 0x0BDE:
		return None, NoPlacement // unassigned
	case 0x0BDF:
		return None, NoPlacement // unassigned
	case 0x0BE0:
		return None, NoPlacement // unassigned
	case 0x0BE1:
		return None, NoPlacement // unassigned
	case 0x0BE2:
		return None, NoPlacement // unassigned
	case 0x0BE3:
		return None, NoPlacement // unassigned
	case 0x0BE4:
		return None, NoPlacement // unassigned
	case 0x0BE5:
		return None, NoPlacement // unassigned
	case 0x0BE6:
		return Number, NoPlacement // Digit Zero
	case 0x0BE7:
		return Number, NoPlacement // Digit One
	case 0x0BE8:
		return Number, NoPlacement // Digit Two
	case 0x0BE9:
		return Number, NoPlacement // Digit Three
	case 0x0BEA:
		return Number, NoPlacement // Digit Four
	case 0x0BEB:
		return Number, NoPlacement // Digit Five
	case 0x0BEC:
		return Number, NoPlacement // Digit Six
	case 0x0BED:
		return Number, NoPlacement // Digit Seven
	case 0x0BEE:
		return Number, NoPlacement // Digit Eight
	case 0x0BEF:
		return Number, NoPlacement // Digit Nine
	case 0x0BF0:
		return Number, NoPlacement // Number Ten
	case 0x0BF1:
		return Number, NoPlacement // Number One Hundred
	case 0x0BF2:
		return Number, NoPlacement // Number One Thousand
	case 0x0BF3:
		return Symbol, NoPlacement // Day Sign
	case 0x0BF4:
		return Symbol, NoPlacement // Month Sign
	case 0x0BF5:
		return Symbol, NoPlacement // Year Sign
	case 0x0BF6:
		return Symbol, NoPlacement // Debit Sign
	case 0x0BF7:
		return Symbol, NoPlacement // Credit Sign
	case 0x0BF8:
		return Symbol, NoPlacement // As Above Sign
	case 0x0BF9:
		return Symbol, NoPlacement // Tamil Rupee Sign
	case 0x0BFA:
		return Symbol, NoPlacement // Number Sign

	// Telugu
	case 0x0C00:
		return Bindu, TopPosition // Combining Candrabindu Above
	case 0x0C01:
		return Bindu, RightPosition // Candrabindu
	case 0x0C02:
		return Bindu, RightPosition // Anusvara
	case 0x0C03:
		return Visarga, RightPosition // Visarga
	case 0x0C04:
		return None, NoPlacement // unassigned
	case 0x0C05:
		return VowelIndependent, NoPlacement // A
	case 0x0C06:
		return VowelIndependent, NoPlacement // Aa
	case 0x0C07:
		return VowelIndependent, NoPlacement // I
	case 0x0C08:
		return VowelIndependent, NoPlacement // Ii
	case 0x0C09:
		return VowelIndependent, NoPlacement // U
	case 0x0C0A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0C0B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0C0C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0C0D:
		return None, NoPlacement // unassigned
	case 0x0C0E:
		return VowelIndependent, NoPlacement // E
	case 0x0C0F:
		return VowelIndependent, NoPlacement // Ee
	case 0x0C10:
		return VowelIndependent, NoPlacement // Ai
	case 0x0C11:
		return None, NoPlacement // unassigned
	case 0x0C12:
		return VowelIndependent, NoPlacement // O
	case 0x0C13:
		return VowelIndependent, NoPlacement // Oo
	case 0x0C14:
		return VowelIndependent, NoPlacement // Au
	case 0x0C15:
		return Consonant, NoPlacement // Ka
	case 0x0C16:
		return Consonant, NoPlacement // Kha
	case 0x0C17:
		return Consonant, NoPlacement // Ga
	case 0x0C18:
		return Consonant, NoPlacement // Gha
	case 0x0C19:
		return Consonant, NoPlacement // Nga
	case 0x0C1A:
		return Consonant, NoPlacement // Ca
	case 0x0C1B:
		return Consonant, NoPlacement // Cha
	case 0x0C1C:
		return Consonant, NoPlacement // Ja
	case 0x0C1D:
		return Consonant, NoPlacement // Jha
	case 0x0C1E:
		return Consonant, NoPlacement // Nya
	case 0x0C1F:
		return Consonant, NoPlacement // Tta
	case 0x0C20:
		return Consonant, NoPlacement // Ttha
	case 0x0C21:
		return Consonant, NoPlacement // Dda
	case 0x0C22:
		return Consonant, NoPlacement // Ddha
	case 0x0C23:
		return Consonant, NoPlacement // Nna
	case 0x0C24:
		return Consonant, NoPlacement // Ta
	case 0x0C25:
		return Consonant, NoPlacement // Tha
	case 0x0C26:
		return Consonant, NoPlacement // Da
	case 0x0C27:
		return Consonant, NoPlacement // Dha
	case 0x0C28:
		return Consonant, NoPlacement // Na
	case 0x0C29:
		return None, NoPlacement // unassigned
	case 0x0C2A:
		return Consonant, NoPlacement // Pa
	case 0x0C2B:
		return Consonant, NoPlacement // Pha
	case 0x0C2C:
		return Consonant, NoPlacement // Ba
	case 0x0C2D:
		return Consonant, NoPlacement // Bha
	case 0x0C2E:
		return Consonant, NoPlacement // Ma
	case 0x0C2F:
		return Consonant, NoPlacement // Ya
	case 0x0C30:
		return Consonant, NoPlacement // Ra
	case 0x0C31:
		return Consonant, NoPlacement // Rra
	case 0x0C32:
		return Consonant, NoPlacement // La
	case 0x0C33:
		return Consonant, NoPlacement // Lla
	case 0x0C34:
		return Consonant, NoPlacement // Llla
	case 0x0C35:
		return Consonant, NoPlacement // Va
	case 0x0C36:
		return Consonant, NoPlacement // Sha
	case 0x0C37:
		return Consonant, NoPlacement // Ssa
	case 0x0C38:
		return Consonant, NoPlacement // Sa
	case 0x0C39:
		return Consonant, NoPlacement // Ha
	case 0x0C3A:
		return None, NoPlacement // unassigned
	case 0x0C3B:
		return None, NoPlacement // unassigned
	case 0x0C3C:
		return None, NoPlacement // unassigned
	case 0x0C3D:
		return Avagraha, NoPlacement // Avagraha
	case 0x0C3E:
		return VowelDependent, TopPosition // Sign Aa
	case 0x0C3F:
		return VowelDependent, TopPosition // Sign I
	case 0x0C40:
		return VowelDependent, TopPosition // Sign Ii
	case 0x0C41:
		return VowelDependent, RightPosition // Sign U
	case 0x0C42:
		return VowelDependent, RightPosition // Sign Uu
	case 0x0C43:
		return VowelDependent, RightPosition // Sign Vocalic R
	case 0x0C44:
		return VowelDependent, RightPosition // Sign Vocalic Rr
	case 0x0C45:
		return None, NoPlacement // unassigned
	case 0x0C46:
		return VowelDependent, TopPosition // Sign E
	case 0x0C47:
		return VowelDependent, TopPosition // Sign Ee
	case 0x0C48:
		return VowelDependent, TopAndBottomPosition // Sign Ai
	case 0x0C49:
		return None, NoPlacement // unassigned
	case 0x0C4A:
		return VowelDependent, TopPosition // Sign O
	case 0x0C4B:
		return VowelDependent, TopPosition // Sign Oo
	case 0x0C4C:
		return VowelDependent, TopPosition // Sign Au
	case 0x0C4D:
		return Virama, TopPosition // Virama
	case 0x0C4E:
		return None, NoPlacement // unassigned
	case 0x0C4F:
		return None, NoPlacement // unassigned
	case 0x0C50:
		return None, NoPlacement // unassigned
	case 0x0C51:
		return None, NoPlacement // unassigned
	case 0x0C52:
		return None, NoPlacement // unassigned
	case 0x0C53:
		return None, NoPlacement // unassigned
	case 0x0C54:
		return None, NoPlacement // unassigned
	case 0x0C55:
		return VowelDependent, TopPosition // Length Mark
	case 0x0C56:
		return VowelDependent, BottomPosition // Ai Length Mark
	case 0x0C57:
		return None, NoPlacement // unassigned
	case 0x0C58:
		return Consonant, NoPlacement // Tsa
	case 0x0C59:
		return Consonant, NoPlacement // Dza
	case 0x0C5A:
		return Consonant, NoPlacement // Rrra
	case 0x0C5B:
		return None, NoPlacement // unassigned
	case 0x0C5C:
		return None, NoPlacement // unassigned
	case 0x0C5D:
		return None, NoPlacement // unassigned
	case 0x0C5E:
		return None, NoPlacement // unassigned
	case 0x0C5F:
		return None, NoPlacement // unassigned
	case 0x0C60:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0C61:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0C62:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0C63:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0C64:
		return None, NoPlacement // unassigned
	case 0x0C65:
		return None, NoPlacement // unassigned
	case 0x0C66:
		return Number, NoPlacement // Digit Zero
	case 0x0C67:
		return Number, NoPlacement // Digit One
	case 0x0C68:
		return Number, NoPlacement // Digit Two
	case 0x0C69:
		return Number, NoPlacement // Digit Three
	case 0x0C6A:
		return Number, NoPlacement // Digit Four
	case 0x0C6B:
		return Number, NoPlacement // Digit Five
	case 0x0C6C:
		return Number, NoPlacement // Digit Six
	case 0x0C6D:
		return Number, NoPlacement // Digit Seven
	case 0x0C6E:
		return Number, NoPlacement // Digit Eight
	case 0x0C6F:
		return Number, NoPlacement // Digit Nine
	case 0x0C70:
		return None, NoPlacement // unassigned
	case 0x0C71:
		return None, NoPlacement // unassigned
	case 0x0C72:
		return None, NoPlacement // unassigned
	case 0x0C73:
		return None, NoPlacement // unassigned
	case 0x0C74:
		return None, NoPlacement // unassigned
	case 0x0C75:
		return None, NoPlacement // unassigned
	case 0x0C76:
		return None, NoPlacement // unassigned
	case 0x0C77:
		return None, NoPlacement // unassigned
	case 0x0C78:
		return Number, NoPlacement // Fraction Zero Odd P
	case 0x0C79:
		return Number, NoPlacement // Fraction One Odd P
	case 0x0C7A:
		return Number, NoPlacement // Fraction Two Odd P
	case 0x0C7B:
		return Number, NoPlacement // Fraction Three Odd P
	case 0x0C7C:
		return Number, NoPlacement // Fraction One Even P
	case 0x0C7D:
		return Number, NoPlacement // Fraction Two Even P
	case 0x0C7E:
		return Number, NoPlacement // Fraction Three Even P
	case 0x0C7F:
		return Symbol, NoPlacement // Tuumu

	// Kannada
	case 0x0C80:
		return None, NoPlacement // Spacing Candrabindu
	case 0x0C81:
		return Bindu, TopPosition // Candrabindu
	case 0x0C82:
		return Bindu, RightPosition // Anusvara
	case 0x0C83:
		return Visarga, RightPosition // Visarga
	case 0x0C84:
		return None, NoPlacement // unassigned
	case 0x0C85:
		return VowelIndependent, NoPlacement // A
	case 0x0C86:
		return VowelIndependent, NoPlacement // Aa
	case 0x0C87:
		return VowelIndependent, NoPlacement // I
	case 0x0C88:
		return VowelIndependent, NoPlacement // Ii
	case 0x0C89:
		return VowelIndependent, NoPlacement // U
	case 0x0C8A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0C8B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0C8C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0C8D:
		return None, NoPlacement // unassigned
	case 0x0C8E:
		return VowelIndependent, NoPlacement // E
	case 0x0C8F:
		return VowelIndependent, NoPlacement // Ee
	case 0x0C90:
		return VowelIndependent, NoPlacement // Ai
	case 0x0C91:
		return None, NoPlacement // unassigned
	case 0x0C92:
		return VowelIndependent, NoPlacement // O
	case 0x0C93:
		return VowelIndependent, NoPlacement // Oo
	case 0x0C94:
		return VowelIndependent, NoPlacement // Au
	case 0x0C95:
		return Consonant, NoPlacement // Ka
	case 0x0C96:
		return Consonant, NoPlacement // Kha
	case 0x0C97:
		return Consonant, NoPlacement // Ga
	case 0x0C98:
		return Consonant, NoPlacement // Gha
	case 0x0C99:
		return Consonant, NoPlacement // Nga
	case 0x0C9A:
		return Consonant, NoPlacement // Ca
	case 0x0C9B:
		return Consonant, NoPlacement // Cha
	case 0x0C9C:
		return Consonant, NoPlacement // Ja
	case 0x0C9D:
		return Consonant, NoPlacement // Jha
	case 0x0C9E:
		return Consonant, NoPlacement // Nya
	case 0x0C9F:
		return Consonant, NoPlacement // Tta
	case 0x0CA0:
		return Consonant, NoPlacement // Ttha
	case 0x0CA1:
		return Consonant, NoPlacement // Dda
	case 0x0CA2:
		return Consonant, NoPlacement // Ddha
	case 0x0CA3:
		return Consonant, NoPlacement // Nna
	case 0x0CA4:
		return Consonant, NoPlacement // Ta
	case 0x0CA5:
		return Consonant, NoPlacement // Tha
	case 0x0CA6:
		return Consonant, NoPlacement // Da
	case 0x0CA7:
		return Consonant, NoPlacement // Dha
	case 0x0CA8:
		return Consonant, NoPlacement // Na
	case 0x0CA9:
		return None, NoPlacement // unassigned
	case 0x0CAA:
		return Consonant, NoPlacement // Pa
	case 0x0CAB:
		return Consonant, NoPlacement // Pha
	case 0x0CAC:
		return Consonant, NoPlacement // Ba
	case 0x0CAD:
		return Consonant, NoPlacement // Bha
	case 0x0CAE:
		return Consonant, NoPlacement // Ma
	case 0x0CAF:
		return Consonant, NoPlacement // Ya
	case 0x0CB0:
		return Consonant, NoPlacement // Ra
	case 0x0CB1:
		return Consonant, NoPlacement // Rra
	case 0x0CB2:
		return Consonant, NoPlacement // La
	case 0x0CB3:
		return Consonant, NoPlacement // Lla
	case 0x0CB4:
		return None, NoPlacement // unassigned
	case 0x0CB5:
		return Consonant, NoPlacement // Va
	case 0x0CB6:
		return Consonant, NoPlacement // Sha
	case 0x0CB7:
		return Consonant, NoPlacement // Ssa
	case 0x0CB8:
		return Consonant, NoPlacement // Sa
	case 0x0CB9:
		return Consonant, NoPlacement // Ha
	case 0x0CBA:
		return None, NoPlacement // unassigned
	case 0x0CBB:
		return None, NoPlacement // unassigned
	case 0x0CBC:
		return Nukta, BottomPosition // Nukta
	case 0x0CBD:
		return Avagraha, NoPlacement // Avagraha
	case 0x0CBE:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0CBF:
		return VowelDependent, TopPosition // Sign I
	case 0x0CC0:
		return VowelDependent, TopAndRightPosition // Sign Ii
	case 0x0CC1:
		return VowelDependent, RightPosition // Sign U
	case 0x0CC2:
		return VowelDependent, RightPosition // Sign Uu
	case 0x0CC3:
		return VowelDependent, RightPosition // Sign Vocalic R
	case 0x0CC4:
		return VowelDependent, RightPosition // Sign Vocalic Rr
	case 0x0CC5:
		return None, NoPlacement // unassigned
	case 0x0CC6:
		return VowelDependent, TopPosition // Sign E
	case 0x0CC7:
		return VowelDependent, TopAndRightPosition // Sign Ee
	case 0x0CC8:
		return VowelDependent, TopAndRightPosition // Sign Ai
	case 0x0CC9:
		return None, NoPlacement // unassigned
	case 0x0CCA:
		return VowelDependent, TopAndRightPosition // Sign O
	case 0x0CCB:
		return VowelDependent, TopAndRightPosition // Sign Oo
	case 0x0CCC:
		return VowelDependent, TopPosition // Sign Au
	case 0x0CCD:
		return Virama, TopPosition // Virama
	case 0x0CCE:
		return None, NoPlacement // unassigned
	case 0x0CCF:
		return None, NoPlacement // unassigned
	case 0x0CD0:
		return None, NoPlacement // unassigned
	case 0x0CD1:
		return None, NoPlacement // unassigned
	case 0x0CD2:
		return None, NoPlacement // unassigned
	case 0x0CD3:
		return None, NoPlacement // unassigned
	case 0x0CD4:
		return None, NoPlacement // unassigned
	case 0x0CD5:
		return VowelDependent, RightPosition // Length Mark
	case 0x0CD6:
		return VowelDependent, RightPosition // Ai Length Mark
	case 0x0CD7:
		return None, NoPlacement // unassigned
	case 0x0CD8:
		return None, NoPlacement // unassigned
	case 0x0CD9:
		return None, NoPlacement // unassigned
	case 0x0CDA:
		return None, NoPlacement // unassigned
	case 0x0CDB:
		return None, NoPlacement // unassigned
	case 0x0CDC:
		return None, NoPlacement // unassigned
	case 0x0CDD:
		return None, NoPlacement // unassigned
	case 0x0CDE:
		return Consonant, NoPlacement // Fa
	case 0x0CDF:
		return None, NoPlacement // unassigned
	case 0x0CE0:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0CE1:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0CE2:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0CE3:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0CE4:
		return None, NoPlacement // unassigned
	case 0x0CE5:
		return None, NoPlacement // unassigned
	case 0x0CE6:
		return Number, NoPlacement // Digit Zero
	case 0x0CE7:
		return Number, NoPlacement // Digit One
	case 0x0CE8:
		return Number, NoPlacement // Digit Two
	case 0x0CE9:
		return Number, NoPlacement // Digit Three
	case 0x0CEA:
		return Number, NoPlacement // Digit Four
	case 0x0CEB:
		return Number, NoPlacement // Digit Five
	case 0x0CEC:
		return Number, NoPlacement // Digit Six
	case 0x0CED:
		return Number, NoPlacement // Digit Seven
	case 0x0CEE:
		return Number, NoPlacement // Digit Eight
	case 0x0CEF:
		return Number, NoPlacement // Digit Nine
	case 0x0CF0:
		return None, NoPlacement // unassigned
	case 0x0CF1:
		return ConsonantWithStacker, NoPlacement // Jihvamuliya
	case 0x0CF2:
		return ConsonantWithStacker, NoPlacement // Upadhmaniya

	// Malayalam
	case 0x0D00:
		return Bindu, TopPosition // Combining Anusvara Above
	case 0x0D01:
		return Bindu, TopPosition // Candrabindu
	case 0x0D02:
		return Bindu, RightPosition // Anusvara
	case 0x0D03:
		return Visarga, RightPosition // Visarga
	case 0x0D04:
		return None, NoPlacement // unassigned
	case 0x0D05:
		return VowelIndependent, NoPlacement // A
	case 0x0D06:
		return VowelIndependent, NoPlacement // Aa
	case 0x0D07:
		return VowelIndependent, NoPlacement // I
	case 0x0D08:
		return VowelIndependent, NoPlacement // Ii
	case 0x0D09:
		return VowelIndependent, NoPlacement // U
	case 0x0D0A:
		return VowelIndependent, NoPlacement // Uu
	case 0x0D0B:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0D0C:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0D0D:
		return None, NoPlacement // unassigned
	case 0x0D0E:
		return VowelIndependent, NoPlacement // E
	case 0x0D0F:
		return VowelIndependent, NoPlacement // Ee
	case 0x0D10:
		return VowelIndependent, NoPlacement // Ai
	case 0x0D11:
		return None, NoPlacement // unassigned
	case 0x0D12:
		return VowelIndependent, NoPlacement // O
	case 0x0D13:
		return VowelIndependent, NoPlacement // Oo
	case 0x0D14:
		return VowelIndependent, NoPlacement // Au
	case 0x0D15:
		return Consonant, NoPlacement // Ka
	case 0x0D16:
		return Consonant, NoPlacement // Kha
	case 0x0D17:
		return Consonant, NoPlacement // Ga
	case 0x0D18:
		return Consonant, NoPlacement // Gha
	case 0x0D19:
		return Consonant, NoPlacement // Nga
	case 0x0D1A:
		return Consonant, NoPlacement // Ca
	case 0x0D1B:
		return Consonant, NoPlacement // Cha
	case 0x0D1C:
		return Consonant, NoPlacement // Ja
	case 0x0D1D:
		return Consonant, NoPlacement // Jha
	case 0x0D1E:
		return Consonant, NoPlacement // Nya
	case 0x0D1F:
		return Consonant, NoPlacement // Tta
	case 0x0D20:
		return Consonant, NoPlacement // Ttha
	case 0x0D21:
		return Consonant, NoPlacement // Dda
	case 0x0D22:
		return Consonant, NoPlacement // Ddha
	case 0x0D23:
		return Consonant, NoPlacement // Nna
	case 0x0D24:
		return Consonant, NoPlacement // Ta
	case 0x0D25:
		return Consonant, NoPlacement // Tha
	case 0x0D26:
		return Consonant, NoPlacement // Da
	case 0x0D27:
		return Consonant, NoPlacement // Dha
	case 0x0D28:
		return Consonant, NoPlacement // Na
	case 0x0D29:
		return Consonant, NoPlacement // Nnna
	case 0x0D2A:
		return Consonant, NoPlacement // Pa
	case 0x0D2B:
		return Consonant, NoPlacement // Pha
	case 0x0D2C:
		return Consonant, NoPlacement // Ba
	case 0x0D2D:
		return Consonant, NoPlacement // Bha
	case 0x0D2E:
		return Consonant, NoPlacement // Ma
	case 0x0D2F:
		return Consonant, NoPlacement // Ya
	case 0x0D30:
		return Consonant, NoPlacement // Ra
	case 0x0D31:
		return Consonant, NoPlacement // Rra
	case 0x0D32:
		return Consonant, NoPlacement // La
	case 0x0D33:
		return Consonant, NoPlacement // Lla
	case 0x0D34:
		return Consonant, NoPlacement // Llla
	case 0x0D35:
		return Consonant, NoPlacement // Va
	case 0x0D36:
		return Consonant, NoPlacement // Sha
	case 0x0D37:
		return Consonant, NoPlacement // Ssa
	case 0x0D38:
		return Consonant, NoPlacement // Sa
	case 0x0D39:
		return Consonant, NoPlacement // Ha
	case 0x0D3A:
		return Consonant, NoPlacement // Ttta
	case 0x0D3B:
		return PureKiller, TopPosition // Vertical Bar Virama
	case 0x0D3C:
		return PureKiller, TopPosition // Circular Virama
	case 0x0D3D:
		return Avagraha, NoPlacement // Avagraha
	case 0x0D3E:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0D3F:
		return VowelDependent, RightPosition // Sign I
	case 0x0D40:
		return VowelDependent, RightPosition // Sign Ii
	case 0x0D41:
		return VowelDependent, RightPosition // Sign U
	case 0x0D42:
		return VowelDependent, RightPosition // Sign Uu
	case 0x0D43:
		return VowelDependent, BottomPosition // Sign Vocalic R
	case 0x0D44:
		return VowelDependent, BottomPosition // Sign Vocalic Rr
	case 0x0D45:
		return None, NoPlacement // unassigned
	case 0x0D46:
		return VowelDependent, LeftPosition // Sign E
	case 0x0D47:
		return VowelDependent, LeftPosition // Sign Ee
	case 0x0D48:
		return VowelDependent, LeftPosition // Sign Ai
	case 0x0D49:
		return None, NoPlacement // unassigned
	case 0x0D4A:
		return VowelDependent, LeftAndRightPosition // Sign O
	case 0x0D4B:
		return VowelDependent, LeftAndRightPosition // Sign Oo
	case 0x0D4C:
		return VowelDependent, LeftAndRightPosition // Sign Au
	case 0x0D4D:
		return Virama, TopPosition // Virama
	case 0x0D4E:
		return ConsonantPreRepha, NoPlacement // Dot Reph
	case 0x0D4F:
		return Symbol, NoPlacement // Para
	case 0x0D50:
		return None, NoPlacement // unassigned
	case 0x0D51:
		return None, NoPlacement // unassigned
	case 0x0D52:
		return None, NoPlacement // unassigned
	case 0x0D53:
		return None, NoPlacement // unassigned
	case 0x0D54:
		return ConsonantDead, NoPlacement // Chillu M
	case 0x0D55:
		return ConsonantDead, NoPlacement // Chillu Y
	case 0x0D56:
		return ConsonantDead, NoPlacement // Chillu Lll
	case 0x0D57:
		return VowelDependent, RightPosition // Au Length Mark
	case 0x0D58:
		return Number, NoPlacement // Fraction 1/160
	case 0x0D59:
		return Number, NoPlacement // Fraction 1/40
	case 0x0D5A:
		return Number, NoPlacement // Fraction 3/80
	case 0x0D5B:
		return Number, NoPlacement // Fraction 1/20
	case 0x0D5C:
		return Number, NoPlacement // Fraction 1/10
	case 0x0D5D:
		return Number, NoPlacement // Fraction 3/20
	case 0x0D5E:
		return Number, NoPlacement // Fraction 1/5
	case 0x0D5F:
		return VowelIndependent, NoPlacement // Archaic Ii
	case 0x0D60:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0D61:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0D62:
		return VowelDependent, BottomPosition // Sign Vocalic L
	case 0x0D63:
		return VowelDependent, BottomPosition // Sign Vocalic Ll
	case 0x0D64:
		return None, NoPlacement // unassigned
	case 0x0D65:
		return None, NoPlacement // unassigned
	case 0x0D66:
		return Number, NoPlacement // Digit Zero
	case 0x0D67:
		return Number, NoPlacement // Digit One
	case 0x0D68:
		return Number, NoPlacement // Digit Two
	case 0x0D69:
		return Number, NoPlacement // Digit Three
	case 0x0D6A:
		return Number, NoPlacement // Digit Four
	case 0x0D6B:
		return Number, NoPlacement // Digit Five
	case 0x0D6C:
		return Number, NoPlacement // Digit Six
	case 0x0D6D:
		return Number, NoPlacement // Digit Seven
	case 0x0D6E:
		return Number, NoPlacement // Digit Eight
	case 0x0D6F:
		return Number, NoPlacement // Digit Nine
	case 0x0D70:
		return Number, NoPlacement // Number Ten
	case 0x0D71:
		return Number, NoPlacement // Number One Hundred
	case 0x0D72:
		return Number, NoPlacement // Number One Thousand
	case 0x0D73:
		return Number, NoPlacement // Fraction 1/4
	case 0x0D74:
		return Number, NoPlacement // Fraction 1/2
	case 0x0D75:
		return Number, NoPlacement // Fraction 3/4
	case 0x0D76:
		return Number, NoPlacement // Fraction 1/16
	case 0x0D77:
		return Number, NoPlacement // Fraction 1/8
	case 0x0D78:
		return Number, NoPlacement // Fraction 3/16
	case 0x0D79:
		return Symbol, NoPlacement // Date Mark
	case 0x0D7A:
		return ConsonantDead, NoPlacement // Chillu Nn
	case 0x0D7B:
		return ConsonantDead, NoPlacement // Chillu N
	case 0x0D7C:
		return ConsonantDead, NoPlacement // Chillu Rr
	case 0x0D7D:
		return ConsonantDead, NoPlacement // Chillu L
	case 0x0D7E:
		return ConsonantDead, NoPlacement // Chillu Ll
	case 0x0D7F:
		return ConsonantDead, NoPlacement // Chillu K

	// Sinhala
	case 0x0D80:
		return None, NoPlacement // unassigned
	case 0x0D81:
		return None, NoPlacement // unassigned
	case 0x0D82:
		return Bindu, RightPosition // Anusvara
	case 0x0D83:
		return Visarga, RightPosition // Visarga
	case 0x0D84:
		return None, NoPlacement // unassigned
	case 0x0D85:
		return VowelIndependent, NoPlacement // A
	case 0x0D86:
		return VowelIndependent, NoPlacement // Aa
	case 0x0D87:
		return VowelIndependent, NoPlacement // Ae
	case 0x0D88:
		return VowelIndependent, NoPlacement // Aae
	case 0x0D89:
		return VowelIndependent, NoPlacement // I
	case 0x0D8A:
		return VowelIndependent, NoPlacement // Ii
	case 0x0D8B:
		return VowelIndependent, NoPlacement // U
	case 0x0D8C:
		return VowelIndependent, NoPlacement // Uu
	case 0x0D8D:
		return VowelIndependent, NoPlacement // Vocalic R
	case 0x0D8E:
		return VowelIndependent, NoPlacement // Vocalic Rr
	case 0x0D8F:
		return VowelIndependent, NoPlacement // Vocalic L
	case 0x0D90:
		return VowelIndependent, NoPlacement // Vocalic Ll
	case 0x0D91:
		return VowelIndependent, NoPlacement // E
	case 0x0D92:
		return VowelIndependent, NoPlacement // Ee
	case 0x0D93:
		return VowelIndependent, NoPlacement // Ai
	case 0x0D94:
		return VowelIndependent, NoPlacement // O
	case 0x0D95:
		return VowelIndependent, NoPlacement // Oo
	case 0x0D96:
		return VowelIndependent, NoPlacement // Au
	case 0x0D97:
		return None, NoPlacement // unassigned
	case 0x0D98:
		return None, NoPlacement // unassigned
	case 0x0D99:
		return None, NoPlacement // unassigned
	case 0x0D9A:
		return Consonant, NoPlacement // Ka
	case 0x0D9B:
		return Consonant, NoPlacement // Kha
	case 0x0D9C:
		return Consonant, NoPlacement // Ga
	case 0x0D9D:
		return Consonant, NoPlacement // Gha
	case 0x0D9E:
		return Consonant, NoPlacement // Nga
	case 0x0D9F:
		return Consonant, NoPlacement // Nnga
	case 0x0DA0:
		return Consonant, NoPlacement // Ca
	case 0x0DA1:
		return Consonant, NoPlacement // Cha
	case 0x0DA2:
		return Consonant, NoPlacement // Ja
	case 0x0DA3:
		return Consonant, NoPlacement // Jha
	case 0x0DA4:
		return Consonant, NoPlacement // Nya
	case 0x0DA5:
		return Consonant, NoPlacement // Jnya
	case 0x0DA6:
		return Consonant, NoPlacement // Nyja
	case 0x0DA7:
		return Consonant, NoPlacement // Tta
	case 0x0DA8:
		return Consonant, NoPlacement // Ttha
	case 0x0DA9:
		return Consonant, NoPlacement // Dda
	case 0x0DAA:
		return Consonant, NoPlacement // Ddha
	case 0x0DAB:
		return Consonant, NoPlacement // Nna
	case 0x0DAC:
		return Consonant, NoPlacement // Nndda
	case 0x0DAD:
		return Consonant, NoPlacement // Ta
	case 0x0DAE:
		return Consonant, NoPlacement // Tha
	case 0x0DAF:
		return Consonant, NoPlacement // Da
	case 0x0DB0:
		return Consonant, NoPlacement // Dha
	case 0x0DB1:
		return Consonant, NoPlacement // Na
	case 0x0DB2:
		return None, NoPlacement // unassigned
	case 0x0DB3:
		return Consonant, NoPlacement // Nda
	case 0x0DB4:
		return Consonant, NoPlacement // Pa
	case 0x0DB5:
		return Consonant, NoPlacement // Pha
	case 0x0DB6:
		return Consonant, NoPlacement // Ba
	case 0x0DB7:
		return Consonant, NoPlacement // Bha
	case 0x0DB8:
		return Consonant, NoPlacement // Ma
	case 0x0DB9:
		return Consonant, NoPlacement // Mba
	case 0x0DBA:
		return Consonant, NoPlacement // Ya
	case 0x0DBB:
		return Consonant, NoPlacement // Ra
	case 0x0DBC:
		return None, NoPlacement // unassigned
	case 0x0DBD:
		return Consonant, NoPlacement // La
	case 0x0DBE:
		return None, NoPlacement // unassigned
	case 0x0DBF:
		return None, NoPlacement // unassigned
	case 0x0DC0:
		return Consonant, NoPlacement // Va
	case 0x0DC1:
		return Consonant, NoPlacement // Sha
	case 0x0DC2:
		return Consonant, NoPlacement // Ssa
	case 0x0DC3:
		return Consonant, NoPlacement // Sa
	case 0x0DC4:
		return Consonant, NoPlacement // Ha
	case 0x0DC5:
		return Consonant, NoPlacement // Lla
	case 0x0DC6:
		return Consonant, NoPlacement // Fa
	case 0x0DC7:
		return None, NoPlacement // unassigned
	case 0x0DC8:
		return None, NoPlacement // unassigned
	case 0x0DC9:
		return None, NoPlacement // unassigned
	case 0x0DCA:
		return Virama, TopPosition // Virama
	case 0x0DCB:
		return None, NoPlacement // unassigned
	case 0x0DCC:
		return None, NoPlacement // unassigned
	case 0x0DCD:
		return None, NoPlacement // unassigned
	case 0x0DCE:
		return None, NoPlacement // unassigned
	case 0x0DCF:
		return VowelDependent, RightPosition // Sign Aa
	case 0x0DD0:
		return VowelDependent, RightPosition // Sign Ae
	case 0x0DD1:
		return VowelDependent, RightPosition // Sign Aae
	case 0x0DD2:
		return VowelDependent, TopPosition // Sign I
	case 0x0DD3:
		return VowelDependent, TopPosition // Sign Ii
	case 0x0DD4:
		return VowelDependent, BottomPosition // Sign U
	case 0x0DD5:
		return None, NoPlacement // unassigned
	case 0x0DD6:
		return VowelDependent, BottomPosition // Sign Uu
	case 0x0DD7:
		return None, NoPlacement // unassigned
	case 0x0DD8:
		return VowelDependent, RightPosition // Sign Vocalic R
	case 0x0DD9:
		return VowelDependent, LeftPosition // Sign E
	case 0x0DDA:
		return VowelDependent, TopAndLeftPosition // Sign Ee
	case 0x0DDB:
		return VowelDependent, LeftPosition // Sign Ai
	case 0x0DDC:
		return VowelDependent, LeftAndRightPosition // Sign O
	case 0x0DDD:
		return VowelDependent, TopLeftAndRightPosition // Sign Oo
	case 0x0DDE:
		return VowelDependent, LeftAndRightPosition // Sign Au
	case 0x0DDF:
		return VowelDependent, RightPosition // Sign Vocalic L
	case 0x0DE0:
		return None, NoPlacement // unassigned
	case 0x0DE1:
		return None, NoPlacement // unassigned
	case 0x0DE2:
		return None, NoPlacement // unassigned
	case 0x0DE3:
		return None, NoPlacement // unassigned
	case 0x0DE4:
		return None, NoPlacement // unassigned
	case 0x0DE5:
		return None, NoPlacement // unassigned
	case 0x0DE6:
		return Number, NoPlacement // Digit Zero
	case 0x0DE7:
		return Number, NoPlacement // Digit One
	case 0x0DE8:
		return Number, NoPlacement // Digit Two
	case 0x0DE9:
		return Number, NoPlacement // Digit Three
	case 0x0DEA:
		return Number, NoPlacement // Digit Four
	case 0x0DEB:
		return Number, NoPlacement // Digit Five
	case 0x0DEC:
		return Number, NoPlacement // Digit Six
	case 0x0DED:
		return Number, NoPlacement // Digit Seven
	case 0x0DEE:
		return Number, NoPlacement // Digit Eight
	case 0x0DEF:
		return Number, NoPlacement // Digit Nine
	case 0x0DF0:
		return None, NoPlacement // unassigned
	case 0x0DF1:
		return None, NoPlacement // unassigned
	case 0x0DF2:
		return VowelDependent, RightPosition // Sign Vocalic Rr
	case 0x0DF3:
		return VowelDependent, RightPosition // Sign Vocalic Ll
	case 0x0DF4:
		return None, NoPlacement // Kunddaliya
	case 0x0DF5:
		return None, NoPlacement // unassigned
	case 0x0DF6:
		return None, NoPlacement // unassigned
	case 0x0DF7:
		return None, NoPlacement // unassigned
	case 0x0DF8:
		return None, NoPlacement // unassigned
	case 0x0DF9:
		return None, NoPlacement // unassigned
	case 0x0DFA:
		return None, NoPlacement // unassigned
	case 0x0DFB:
		return None, NoPlacement // unassigned
	case 0x0DFC:
		return None, NoPlacement // unassigned
	case 0x0DFD:
		return None, NoPlacement // unassigned
	case 0x0DFE:
		return None, NoPlacement // unassigned
	case 0x0DFF:
		return None, NoPlacement // unassigned

	// Vedic Extensions
	case 0x1CD0:
		return Cantillation, TopPosition // Tone Karshana
	case 0x1CD1:
		return Cantillation, TopPosition // Tone Shara
	case 0x1CD2:
		return Cantillation, TopPosition // Tone Prenkha
	case 0x1CD3:
		return None, NoPlacement // Sign Nihshvasa
	case 0x1CD4:
		return Cantillation, Overstruck // Tone Midline Svarita
	case 0x1CD5:
		return Cantillation, BottomPosition // Tone Aggravated Independent Svarita
	case 0x1CD6:
		return Cantillation, BottomPosition // Tone Independent Svarita
	case 0x1CD7:
		return Cantillation, BottomPosition // Tone Kathaka Independent Svarita
	case 0x1CD8:
		return Cantillation, BottomPosition // Tone Candra Below
	case 0x1CD9:
		return Cantillation, BottomPosition // Tone Kathaka Independent Svarita Schroeder
	case 0x1CDA:
		return Cantillation, TopPosition // Tone Double Svarita
	case 0x1CDB:
		return Cantillation, TopPosition // Tone Triple Svarita
	case 0x1CDC:
		return Cantillation, BottomPosition // Tone Kathaka Anudatta
	case 0x1CDD:
		return Cantillation, BottomPosition // Tone Dot Below
	case 0x1CDE:
		return Cantillation, BottomPosition // Tone Two Dots Below
	case 0x1CDF:
		return Cantillation, BottomPosition // Tone Three Dots Below
	case 0x1CE0:
		return Cantillation, TopPosition // Tone Rigvedic Kashmiri Independent Svarita
	case 0x1CE1:
		return Cantillation, RightPosition // Tone Atharavedic Independent Svarita
	case 0x1CE2:
		return Avagraha, Overstruck // Sign Visarga Svarita
	case 0x1CE3:
		return None, Overstruck // Sign Visarga Udatta
	case 0x1CE4:
		return None, Overstruck // Sign Reversed Visarga Udatta
	case 0x1CE5:
		return None, Overstruck // Sign Visarga Anudatta
	case 0x1CE6:
		return None, Overstruck // Sign Reversed Visarga Anudatta
	case 0x1CE7:
		return None, Overstruck // Sign Visarga Udatta With Tail
	case 0x1CE8:
		return Avagraha, Overstruck // Sign Visarga Anudatta With Tail
	case 0x1CE9:
		return Avagraha, NoPlacement // Sign Anusvara Antargomukha
	case 0x1CEA:
		return None, NoPlacement // Sign Anusvara Bahirgomukha
	case 0x1CEB:
		return None, NoPlacement // Sign Anusvara Vamagomukha
	case 0x1CEC:
		return Avagraha, NoPlacement // Sign Anusvara Vamagomukha With Tail
	case 0x1CED:
		return Avagraha, BottomPosition // Sign Tiryak
	case 0x1CEE:
		return Avagraha, NoPlacement // Sign Hexiform Long Anusvara
	case 0x1CEF:
		return None, NoPlacement // Sign Long Anusvara
	case 0x1CF0:
		return None, NoPlacement // Sign Rthang Long Anusvara
	case 0x1CF1:
		return Avagraha, NoPlacement // Sign Anusvara Ubhayato Mukha
	case 0x1CF2:
		return Visarga, NoPlacement // Sign Ardhavisarga
	case 0x1CF3:
		return Visarga, NoPlacement // Sign Rotated Ardhavisarga
	case 0x1CF4:
		return Cantillation, TopPosition // Tone Candra Above
	case 0x1CF5:
		return Consonant, NoPlacement // Sign Jihvamuliya
	case 0x1CF6:
		return Consonant, NoPlacement // Sign Upadhmaniya
	case 0x1CF7:
		return None, NoPlacement // Sign Atikrama
	case 0x1CF8:
		return Cantillation, NoPlacement // Tone Ring Above
	case 0x1CF9:
		return Cantillation, NoPlacement // Tone Double Ring Above

	// Devanagari Extended
	case 0xA8E0:
		return Cantillation, TopPosition // Combining Zero
	case 0xA8E1:
		return Cantillation, TopPosition // Combining One
	case 0xA8E2:
		return Cantillation, TopPosition // Combining Two
	case 0xA8E3:
		return Cantillation, TopPosition // Combining Three
	case 0xA8E4:
		return Cantillation, TopPosition // Combining Four
	case 0xA8E5:
		return Cantillation, TopPosition // Combining Five
	case 0xA8E6:
		return Cantillation, TopPosition // Combining Six
	case 0xA8E7:
		return Cantillation, TopPosition // Combining Seven
	case 0xA8E8:
		return Cantillation, TopPosition // Combining Eight
	case 0xA8E9:
		return Cantillation, TopPosition // Combining Nine
	case 0xA8EA:
		return Cantillation, TopPosition // Combining A
	case 0xA8EB:
		return Cantillation, TopPosition // Combining U
	case 0xA8EC:
		return Cantillation, TopPosition // Combining Ka
	case 0xA8ED:
		return Cantillation, TopPosition // Combining Na
	case 0xA8EE:
		return Cantillation, TopPosition // Combining Pa
	case 0xA8EF:
		return Cantillation, TopPosition // Combining Ra
	case 0xA8F0:
		return Cantillation, TopPosition // Combining Vi
	case 0xA8F1:
		return Cantillation, TopPosition // Combining Avagraha
	case 0xA8F2:
		return Bindu, NoPlacement // Spacing Candrabindu
	case 0xA8F3:
		return Bindu, NoPlacement // Candrabindu Virama
	case 0xA8F4:
		return None, NoPlacement // Double Candrabindu Virama
	case 0xA8F5:
		return None, NoPlacement // Candrabindu Two
	case 0xA8F6:
		return None, NoPlacement // Candrabindu Three
	case 0xA8F7:
		return None, NoPlacement // Candrabindu Avagraha
	case 0xA8F8:
		return None, NoPlacement // Pushpika
	case 0xA8F9:
		return None, NoPlacement // Gap Filler
	case 0xA8FA:
		return None, NoPlacement // Caret
	case 0xA8FB:
		return None, NoPlacement // Headstroke
	case 0xA8FC:
		return None, NoPlacement // Siddham
	case 0xA8FD:
		return None, NoPlacement // Jain Om

	// Sinhala Archaic Numbers
	case 0x111E0:
		return None, NoPlacement // unassigned
	case 0x111E1:
		return Number, NoPlacement // Archaic Digit One
	case 0x111E2:
		return Number, NoPlacement // Archaic Digit Two
	case 0x111E3:
		return Number, NoPlacement // Archaic Digit Three
	case 0x111E4:
		return Number, NoPlacement // Archaic Digit Four
	case 0x111E5:
		return Number, NoPlacement // Archaic Digit Five
	case 0x111E6:
		return Number, NoPlacement // Archaic Digit Six
	case 0x111E7:
		return Number, NoPlacement // Archaic Digit Seven
	case 0x111E8:
		return Number, NoPlacement // Archaic Digit Eight
	case 0x111E9:
		return Number, NoPlacement // Archaic Digit Nine
	case 0x111EA:
		return Number, NoPlacement // Archaic Number Ten
	case 0x111EB:
		return Number, NoPlacement // Archaic Number 20
	case 0x111EC:
		return Number, NoPlacement // Archaic Number 30
	case 0x111ED:
		return Number, NoPlacement // Archaic Number 40
	case 0x111EE:
		return Number, NoPlacement // Archaic Number 50
	case 0x111EF:
		return Number, NoPlacement // Archaic Number 60
	case 0x111F0:
		return Number, NoPlacement // Archaic Number 70
	case 0x111F1:
		return Number, NoPlacement // Archaic Number 80
	case 0x111F2:
		return Number, NoPlacement // Archaic Number 90
	case 0x111F3:
		return Number, NoPlacement // Archaic Number 100
	case 0x111F4:
		return Number, NoPlacement // Archaic Number 1000
	case 0x111F5:
		return None, NoPlacement // unassigned
	case 0x111F6:
		return None, NoPlacement // unassigned
	case 0x111F7:
		return None, NoPlacement // unassigned
	case 0x111F8:
		return None, NoPlacement // unassigned
	case 0x111F9:
		return None, NoPlacement // unassigned
	case 0x111FA:
		return None, NoPlacement // unassigned
	case 0x111FB:
		return None, NoPlacement // unassigned
	case 0x111FC:
		return None, NoPlacement // unassigned
	case 0x111FD:
		return None, NoPlacement // unassigned
	case 0x111FE:
		return None, NoPlacement // unassigned
	case 0x111FF:
		return None, NoPlacement // unassigned

	// Grantha marks
	case 0x11301:
		return Bindu, TopPosition // Grantha Candrabindu
	case 0x11303:
		return Visarga, RightPosition // Grantha Visarga
	case 0x1133C:
		return Nukta, BottomPosition // Grantha Nukta

	// Miscellaneous
	case 0x00A0:
		return Placeholder, NoPlacement // No-break space
	case 0x00B2:
		return SyllableModifier, NoPlacement // Superscript Two (used in Tamil)
	case 0x00B3:
		return SyllableModifier, NoPlacement // Superscript Three (used in Tamil)
	case 0x200C:
		return NonJoiner, NoPlacement // Zero-width non-joiner
	case 0x200D:
		return Joiner, NoPlacement // Zero-width joiner
	case 0x2010:
		return Placeholder, NoPlacement // Hyphen
	case 0x2011:
		return Placeholder, NoPlacement // No-break hyphen
	case 0x2012:
		return Placeholder, NoPlacement // Figure dash
	case 0x2013:
		return Placeholder, NoPlacement // En dash
	case 0x2014:
		return Placeholder, NoPlacement // Em dash
	case 0x2074:
		return SyllableModifier, NoPlacement // Superscript Four (used in Tamil)
	case 0x2082:
		return SyllableModifier, NoPlacement // Subscript Two (used in Tamil)
	case 0x2083:
		return SyllableModifier, NoPlacement // Subscript Three (used in Tamil)
	case 0x2084:
		return SyllableModifier, NoPlacement // Subscript Four (used in Tamil)
	case 0x25CC:
		return DottedCircle, NoPlacement // Dotted circle
	}
	return None, NoPlacement
}
