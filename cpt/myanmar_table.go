package cpt

// myanmarLookup implements the Myanmar character property table: the Myanmar
// block U+1000-U+109F, Myanmar Extended-A U+AA60-U+AA7F, Myanmar Extended-B
// U+A9E0-U+A9FE, plus the miscellaneous range shared with the Indic table.
// Every other codepoint returns (MyanmarNone, NoPlacement).
//
// HarfBuzz equivalent: hb-ot-shaper-myanmar.cc's use of the indic table,
// specialized to the Myanmar-only class vocabulary.
func myanmarLookup(cp rune) (MyanmarShapingClass, MarkPlacement) {
	switch cp {

	// Myanmar
	case 0x1000:
		return MyanmarConsonant, NoPlacement // က Ka
	case 0x1001:
		return MyanmarConsonant, NoPlacement // ခ Kha
	case 0x1002:
		return MyanmarConsonant, NoPlacement // ဂ Ga
	case 0x1003:
		return MyanmarConsonant, NoPlacement // ဃ Gha
	case 0x1004:
		return MyanmarConsonant, NoPlacement // င Nga
	case 0x1005:
		return MyanmarConsonant, NoPlacement // စ Ca
	case 0x1006:
		return MyanmarConsonant, NoPlacement // ဆ Cha
	case 0x1007:
		return MyanmarConsonant, NoPlacement // ဇ Ja
	case 0x1008:
		return MyanmarConsonant, NoPlacement // ဈ Jha
	case 0x1009:
		return MyanmarConsonant, NoPlacement // ဉ Nya
	case 0x100A:
		return MyanmarConsonant, NoPlacement // ည Nnya
	case 0x100B:
		return MyanmarConsonant, NoPlacement // ဋ Tta
	case 0x100C:
		return MyanmarConsonant, NoPlacement // ဌ Ttha
	case 0x100D:
		return MyanmarConsonant, NoPlacement // ဍ Dda
	case 0x100E:
		return MyanmarConsonant, NoPlacement // ဎ DDha
	case 0x100F:
		return MyanmarConsonant, NoPlacement // ဏ Nna
	case 0x1010:
		return MyanmarConsonant, NoPlacement // တ Ta
	case 0x1011:
		return MyanmarConsonant, NoPlacement // ထ Tha
	case 0x1012:
		return MyanmarConsonant, NoPlacement // ဒ Da
	case 0x1013:
		return MyanmarConsonant, NoPlacement // ဓ Dha
	case 0x1014:
		return MyanmarConsonant, NoPlacement // န Na
	case 0x1015:
		return MyanmarConsonant, NoPlacement // ပ Pa
	case 0x1016:
		return MyanmarConsonant, NoPlacement // ဖ Pha
	case 0x1017:
		return MyanmarConsonant, NoPlacement // ဗ Ba
	case 0x1018:
		return MyanmarConsonant, NoPlacement // ဘ Bha
	case 0x1019:
		return MyanmarConsonant, NoPlacement // မ Ma
	case 0x101A:
		return MyanmarConsonant, NoPlacement // ယ Ya
	case 0x101B:
		return MyanmarConsonant, NoPlacement // ရ Ra
	case 0x101C:
		return MyanmarConsonant, NoPlacement // လ La
	case 0x101D:
		return MyanmarConsonant, NoPlacement // ဝ Wa
	case 0x101E:
		return MyanmarConsonant, NoPlacement // သ Sa
	case 0x101F:
		return MyanmarConsonant, NoPlacement // ဟ Ha
	case 0x1020:
		return MyanmarConsonant, NoPlacement // ဠ Lla
	case 0x1021:
		return MyanmarVowelIndependent, NoPlacement // အ A
	case 0x1022:
		return MyanmarVowelIndependent, NoPlacement // ဢ Shan A
	case 0x1023:
		return MyanmarVowelIndependent, NoPlacement // ဣ I
	case 0x1024:
		return MyanmarVowelIndependent, NoPlacement // ဤ Ii
	case 0x1025:
		return MyanmarVowelIndependent, NoPlacement // ဥ U
	case 0x1026:
		return MyanmarVowelIndependent, NoPlacement // ဦ Uu
	case 0x1027:
		return MyanmarVowelIndependent, NoPlacement // ဧ E
	case 0x1028:
		return MyanmarVowelIndependent, NoPlacement // ဨ Mon E
	case 0x1029:
		return MyanmarVowelIndependent, NoPlacement // ဩ O
	case 0x102A:
		return MyanmarVowelIndependent, NoPlacement // ဪ Au
	case 0x102B:
		return MyanmarVowelDependent, RightPosition // ါ Sign Tall Aa
	case 0x102C:
		return MyanmarVowelDependent, RightPosition // ာ Sign Aa
	case 0x102D:
		return MyanmarVowelDependent, TopPosition // ိ Sign I
	case 0x102E:
		return MyanmarVowelDependent, TopPosition // ီ Sign Ii
	case 0x102F:
		return MyanmarVowelDependent, BottomPosition // ု Sign U
	case 0x1030:
		return MyanmarVowelDependent, BottomPosition // ူ Sign Uu
	case 0x1031:
		return MyanmarVowelDependent, LeftPosition // ေ Sign E
	case 0x1032:
		return MyanmarVowelDependent, TopPosition // ဲ Sign Ai
	case 0x1033:
		return MyanmarVowelDependent, TopPosition // ဳ Sign Mon Ii
	case 0x1034:
		return MyanmarVowelDependent, TopPosition // ဴ Sign Mon O
	case 0x1035:
		return MyanmarVowelDependent, TopPosition // ဵ Sign E Above
	case 0x1036:
		return MyanmarBindu, TopPosition // ံ Anusvara
	case 0x1037:
		return MyanmarToneMarker, BottomPosition // ့ Dot Below
	case 0x1038:
		return MyanmarVisarga, RightPosition // း Visarga
	case 0x1039:
		return MyanmarInvisibleStacker, NoPlacement // ္ Virama
	case 0x103A:
		return MyanmarPureKiller, TopPosition // ် Asat
	case 0x103B:
		return MyanmarConsonantMedial, RightPosition // ျ Sign Medial Ya
	case 0x103C:
		return MyanmarConsonantMedial, TopLeftAndBottomPosition // ြ Sign Medial Ra
	case 0x103D:
		return MyanmarConsonantMedial, BottomPosition // ွ Sign Medial Wa
	case 0x103E:
		return MyanmarConsonantMedial, BottomPosition // ှ Sign Medial Ha
	case 0x103F:
		return MyanmarConsonant, NoPlacement // ဿ Great Sa
	case 0x1040:
		return MyanmarNumber, NoPlacement // ၀ Digit Zero
	case 0x1041:
		return MyanmarNumber, NoPlacement // ၁ Digit One
	case 0x1042:
		return MyanmarNumber, NoPlacement // ၂ Digit Two
	case 0x1043:
		return MyanmarNumber, NoPlacement // ၃ Digit Three
	case 0x1044:
		return MyanmarNumber, NoPlacement // ၄ Digit Four
	case 0x1045:
		return MyanmarNumber, NoPlacement // ၅ Digit Five
	case 0x1046:
		return MyanmarNumber, NoPlacement // ၆ Digit Six
	case 0x1047:
		return MyanmarNumber, NoPlacement // ၇ Digit Seven
	case 0x1048:
		return MyanmarNumber, NoPlacement // ၈ Digit Eight
	case 0x1049:
		return MyanmarNumber, NoPlacement // ၉ Digit Nine
	case 0x104A:
		return MyanmarNone, NoPlacement // ၊ Little Section
	case 0x104B:
		return MyanmarNone, NoPlacement // ။ Section
	case 0x104C:
		return MyanmarNone, NoPlacement // ၌ Locative
	case 0x104D:
		return MyanmarNone, NoPlacement // ၍ Completed
	case 0x104E:
		return MyanmarConsonantPlaceholder, NoPlacement // ၎ Aforementioned
	case 0x104F:
		return MyanmarNone, NoPlacement // ၏ Genitive
	case 0x1050:
		return MyanmarConsonant, NoPlacement // ၐ Sha
	case 0x1051:
		return MyanmarConsonant, NoPlacement // ၑ Ssa
	case 0x1052:
		return MyanmarVowelIndependent, NoPlacement // ၒ Vocalic R
	case 0x1053:
		return MyanmarVowelIndependent, NoPlacement // ၓ Vocalic Rr
	case 0x1054:
		return MyanmarVowelIndependent, NoPlacement // ၔ Vocalic L
	case 0x1055:
		return MyanmarVowelIndependent, NoPlacement // ၕ Vocalic Ll
	case 0x1056:
		return MyanmarVowelDependent, RightPosition // ၖ Sign Vocalic R
	case 0x1057:
		return MyanmarVowelDependent, RightPosition // ၗ Sign Vocalic Rr
	case 0x1058:
		return MyanmarVowelDependent, BottomPosition // ၘ Sign Vocalic L
	case 0x1059:
		return MyanmarVowelDependent, BottomPosition // ၙ Sign Vocalic Ll
	case 0x105A:
		return MyanmarConsonant, NoPlacement // ၚ Mon Nga
	case 0x105B:
		return MyanmarConsonant, NoPlacement // ၛ Mon Jha
	case 0x105C:
		return MyanmarConsonant, NoPlacement // ၜ Mon Bba
	case 0x105D:
		return MyanmarConsonant, NoPlacement // ၝ Mon Bbe
	case 0x105E:
		return MyanmarConsonantMedial, BottomPosition // ၞ Sign Mon Medial Na
	case 0x105F:
		return MyanmarConsonantMedial, BottomPosition // ၟ Sign Mon Medial Ma
	case 0x1060:
		return MyanmarConsonantMedial, BottomPosition // ၠ Sign Mon Medial La
	case 0x1061:
		return MyanmarConsonant, NoPlacement // ၡ Sgaw Karen Sha
	case 0x1062:
		return MyanmarVowelDependent, RightPosition // ၢ Sign Sgaw Karen Eu
	case 0x1063:
		return MyanmarToneMarker, RightPosition // ၣ Tone Sgaw Karen Hathi
	case 0x1064:
		return MyanmarToneMarker, RightPosition // ၤ Tone Sgaw Karen Ke Pho
	case 0x1065:
		return MyanmarConsonant, NoPlacement // ၥ Western Pwo Karen Tha
	case 0x1066:
		return MyanmarConsonant, NoPlacement // ၦ Western Pwo Karen Pwa
	case 0x1067:
		return MyanmarVowelDependent, RightPosition // ၧ Sign Western Pwo Karen Eu
	case 0x1068:
		return MyanmarVowelDependent, RightPosition // ၨ Sign Western Pwo Karen Ue
	case 0x1069:
		return MyanmarToneMarker, RightPosition // ၩ Sign Western Pwo Karen Tone 1
	case 0x106A:
		return MyanmarToneMarker, RightPosition // ၪ Sign Western Pwo Karen Tone 2
	case 0x106B:
		return MyanmarToneMarker, RightPosition // ၫ Sign Western Pwo Karen Tone 3
	case 0x106C:
		return MyanmarToneMarker, RightPosition // ၬ Sign Western Pwo Karen Tone 4
	case 0x106D:
		return MyanmarToneMarker, RightPosition // ၭ Sign Western Pwo Karen Tone 5
	case 0x106E:
		return MyanmarConsonant, NoPlacement // ၮ Eastern Pwo Karen Nna
	case 0x106F:
		return MyanmarConsonant, NoPlacement // ၯ Eastern Pwo Karen Ywa
	case 0x1070:
		return MyanmarConsonant, NoPlacement // ၰ Eastern Pwo Karen Ghwa
	case 0x1071:
		return MyanmarVowelDependent, TopPosition // ၱ Sign Geba Karen I
	case 0x1072:
		return MyanmarVowelDependent, TopPosition // ၲ Sign Kayah Oe
	case 0x1073:
		return MyanmarVowelDependent, TopPosition // ၳ Sign Kayah U
	case 0x1074:
		return MyanmarVowelDependent, TopPosition // ၴ Sign Kayah Ee
	case 0x1075:
		return MyanmarConsonant, NoPlacement // ၵ Shan Ka
	case 0x1076:
		return MyanmarConsonant, NoPlacement // ၶ Shan Kha
	case 0x1077:
		return MyanmarConsonant, NoPlacement // ၷ Shan Ga
	case 0x1078:
		return MyanmarConsonant, NoPlacement // ၸ Shan Ca
	case 0x1079:
		return MyanmarConsonant, NoPlacement // ၹ Shan Za
	case 0x107A:
		return MyanmarConsonant, NoPlacement // ၺ Shan Nya
	case 0x107B:
		return MyanmarConsonant, NoPlacement // ၻ Shan Da
	case 0x107C:
		return MyanmarConsonant, NoPlacement // ၼ Shan Na
	case 0x107D:
		return MyanmarConsonant, NoPlacement // ၽ Shan Pha
	case 0x107E:
		return MyanmarConsonant, NoPlacement // ၾ Shan Fa
	case 0x107F:
		return MyanmarConsonant, NoPlacement // ၿ Shan Ba
	case 0x1080:
		return MyanmarConsonant, NoPlacement // ႀ Shan Tha
	case 0x1081:
		return MyanmarConsonant, NoPlacement // ႁ Shan Ha
	case 0x1082:
		return MyanmarConsonantMedial, BottomPosition // ႂ Sign Shan Medial Wa
	case 0x1083:
		return MyanmarVowelDependent, RightPosition // ႃ Sign Shan Aa
	case 0x1084:
		return MyanmarVowelDependent, LeftPosition // ႄ Sign Shan E
	case 0x1085:
		return MyanmarVowelDependent, TopPosition // ႅ Sign Shan E Above
	case 0x1086:
		return MyanmarVowelDependent, TopPosition // ႆ Sign Shan Final Y
	case 0x1087:
		return MyanmarToneMarker, RightPosition // ႇ Sign Shan Tone 2
	case 0x1088:
		return MyanmarToneMarker, RightPosition // ႈ Sign Shan Tone 3
	case 0x1089:
		return MyanmarToneMarker, RightPosition // ႉ Sign Shan Tone 5
	case 0x108A:
		return MyanmarToneMarker, RightPosition // ႊ Sign Shan Tone 6
	case 0x108B:
		return MyanmarToneMarker, RightPosition // ႋ Sign Shan Council Tone 2
	case 0x108C:
		return MyanmarToneMarker, RightPosition // ႌ Sign Shan Council Tone 3
	case 0x108D:
		return MyanmarToneMarker, BottomPosition // ႍ Sign Shan Council Emphatic Tone
	case 0x108E:
		return MyanmarConsonant, NoPlacement // ႎ Rumai Palaung Fa
	case 0x108F:
		return MyanmarToneMarker, RightPosition // ႏ Sign Rumai Palaung Tone 5
	case 0x1090:
		return MyanmarNumber, NoPlacement // ႐ Shan Digit Zero
	case 0x1091:
		return MyanmarNumber, NoPlacement // ႑ Shan Digit One
	case 0x1092:
		return MyanmarNumber, NoPlacement // ႒ Shan Digit Two
	case 0x1093:
		return MyanmarNumber, NoPlacement // ႓ Shan Digit Three
	case 0x1094:
		return MyanmarNumber, NoPlacement // ႔ Shan Digit Four
	case 0x1095:
		return MyanmarNumber, NoPlacement // ႕ Shan Digit Five
	case 0x1096:
		return MyanmarNumber, NoPlacement // ႖ Shan Digit Six
	case 0x1097:
		return MyanmarNumber, NoPlacement // ႗ Shan Digit Seven
	case 0x1098:
		return MyanmarNumber, NoPlacement // ႘ Shan Digit Eight
	case 0x1099:
		return MyanmarNumber, NoPlacement // ႙ Shan Digit Nine
	case 0x109A:
		return MyanmarToneMarker, RightPosition // ႚ Sign Khamti Tone 1
	case 0x109B:
		return MyanmarToneMarker, RightPosition // ႛ Sign Khamti Tone 3
	case 0x109C:
		return MyanmarVowelDependent, RightPosition // ႜ Sign Aiton A
	case 0x109D:
		return MyanmarVowelDependent, TopPosition // ႝ Sign Aiton Ai
	case 0x109E:
		return MyanmarSymbol, NoPlacement // ႞ Shan One
	case 0x109F:
		return MyanmarSymbol, NoPlacement // ႟ Shan Exclamation

	// Myanmar Extended A
	case 0xAA60:
		return MyanmarConsonant, NoPlacement // ꩠ Khamti Ga
	case 0xAA61:
		return MyanmarConsonant, NoPlacement // ꩡ Khamti Ca
	case 0xAA62:
		return MyanmarConsonant, NoPlacement // ꩢ Khamti Cha
	case 0xAA63:
		return MyanmarConsonant, NoPlacement // ꩣ Khamti Ja
	case 0xAA64:
		return MyanmarConsonant, NoPlacement // ꩤ Khamti Jha
	case 0xAA65:
		return MyanmarConsonant, NoPlacement // ꩥ Khamti Nya
	case 0xAA66:
		return MyanmarConsonant, NoPlacement // ꩦ Khamti Tta
	case 0xAA67:
		return MyanmarConsonant, NoPlacement // ꩧ Khamti Ttha
	case 0xAA68:
		return MyanmarConsonant, NoPlacement // ꩨ Khamti Dda
	case 0xAA69:
		return MyanmarConsonant, NoPlacement // ꩩ Khamti Ddha
	case 0xAA6A:
		return MyanmarConsonant, NoPlacement // ꩪ Khamti Dha
	case 0xAA6B:
		return MyanmarConsonant, NoPlacement // ꩫ Khamti Na
	case 0xAA6C:
		return MyanmarConsonant, NoPlacement // ꩬ Khamti Sa
	case 0xAA6D:
		return MyanmarConsonant, NoPlacement // ꩭ Khamti Ha
	case 0xAA6E:
		return MyanmarConsonant, NoPlacement // ꩮ Khamti Hha
	case 0xAA6F:
		return MyanmarConsonant, NoPlacement // ꩯ Khamti Fa
	case 0xAA70:
		return MyanmarNone, NoPlacement // ꩰ Khamti Reduplication
	case 0xAA71:
		return MyanmarConsonant, NoPlacement // ꩱ Khamti Xa
	case 0xAA72:
		return MyanmarConsonant, NoPlacement // ꩲ Khamti Za
	case 0xAA73:
		return MyanmarConsonant, NoPlacement // ꩳ Khamti Ra
	case 0xAA74:
		return MyanmarConsonantPlaceholder, NoPlacement // ꩴ Khamti Oay
	case 0xAA75:
		return MyanmarConsonantPlaceholder, NoPlacement // ꩵ Khamti Qn
	case 0xAA76:
		return MyanmarConsonantPlaceholder, NoPlacement // ꩶ Khamti Hm
	case 0xAA77:
		return MyanmarSymbol, NoPlacement // ꩷ Khamti Aiton Exclamation
	case 0xAA78:
		return MyanmarSymbol, NoPlacement // ꩸ Khamti Aiton One
	case 0xAA79:
		return MyanmarSymbol, NoPlacement // ꩹ Khamti Aiton Two
	case 0xAA7A:
		return MyanmarConsonant, NoPlacement // ꩺ Khamti Aiton Ra
	case 0xAA7B:
		return MyanmarToneMarker, RightPosition // ꩻ Sign Pao Karen Tone
	case 0xAA7C:
		return MyanmarToneMarker, TopPosition // ꩼ Sign Tai Laing Tone 2
	case 0xAA7D:
		return MyanmarToneMarker, RightPosition // ꩽ Sign Tai Laing Tone 5
	case 0xAA7E:
		return MyanmarConsonant, NoPlacement // ꩾ Shwe Palaung Cha
	case 0xAA7F:
		return MyanmarConsonant, NoPlacement // ꩿ Shwe Palaung Sha

	// Myanmar Extended B
	case 0xA9E0:
		return MyanmarConsonant, NoPlacement // ꧠ Shan Gha
	case 0xA9E1:
		return MyanmarConsonant, NoPlacement // ꧡ Shan Cha
	case 0xA9E2:
		return MyanmarConsonant, NoPlacement // ꧢ Shan Jha
	case 0xA9E3:
		return MyanmarConsonant, NoPlacement // ꧣ Shan Nna
	case 0xA9E4:
		return MyanmarConsonant, NoPlacement // ꧤ Shan Bha
	case 0xA9E5:
		return MyanmarVowelDependent, TopPosition // ꧥ Sign Shan Saw
	case 0xA9E6:
		return MyanmarNone, NoPlacement // ꧦ Shan Reduplication
	case 0xA9E7:
		return MyanmarConsonant, NoPlacement // ꧧ Tai Laing Nya
	case 0xA9E8:
		return MyanmarConsonant, NoPlacement // ꧨ Tai Laing Fa
	case 0xA9E9:
		return MyanmarConsonant, NoPlacement // ꧩ Tai Laing Ga
	case 0xA9EA:
		return MyanmarConsonant, NoPlacement // ꧪ Tai Laing Gha
	case 0xA9EB:
		return MyanmarConsonant, NoPlacement // ꧫ Tai Laing Ja
	case 0xA9EC:
		return MyanmarConsonant, NoPlacement // ꧬ Tai Laing Jha
	case 0xA9ED:
		return MyanmarConsonant, NoPlacement // ꧭ Tai Laing Dda
	case 0xA9EE:
		return MyanmarConsonant, NoPlacement // ꧮ Tai Laing Ddha
	case 0xA9EF:
		return MyanmarConsonant, NoPlacement // ꧯ Tai Laing Nna
	case 0xA9F0:
		return MyanmarNumber, NoPlacement // ꧰ Tai Laing Digit Zero
	case 0xA9F1:
		return MyanmarNumber, NoPlacement // ꧱ Tai Laing Digit One
	case 0xA9F2:
		return MyanmarNumber, NoPlacement // ꧲ Tai Laing Digit Two
	case 0xA9F3:
		return MyanmarNumber, NoPlacement // ꧳ Tai Laing Digit Three
	case 0xA9F4:
		return MyanmarNumber, NoPlacement // ꧴ Tai Laing Digit Four
	case 0xA9F5:
		return MyanmarNumber, NoPlacement // ꧵ Tai Laing Digit Five
	case 0xA9F6:
		return MyanmarNumber, NoPlacement // ꧶ Tai Laing Digit Six
	case 0xA9F7:
		return MyanmarNumber, NoPlacement // ꧷ Tai Laing Digit Seven
	case 0xA9F8:
		return MyanmarNumber, NoPlacement // ꧸ Tai Laing Digit Eight
	case 0xA9F9:
		return MyanmarNumber, NoPlacement // ꧹ Tai Laing Digit Nine
	case 0xA9FA:
		return MyanmarConsonant, NoPlacement // ꧺ Tai Laing Lla
	case 0xA9FB:
		return MyanmarConsonant, NoPlacement // ꧻ Tai Laing Da
	case 0xA9FC:
		return MyanmarConsonant, NoPlacement // ꧼ Tai Laing Dha
	case 0xA9FD:
		return MyanmarConsonant, NoPlacement // ꧽ Tai Laing Ba
	case 0xA9FE:
		return MyanmarConsonant, NoPlacement // ꧾ Tai Laing Bha

	// Miscellaneous
	case 0x00A0:
		return MyanmarPlaceholder, NoPlacement // No-break space
	case 0x200C:
		return MyanmarNonJoiner, NoPlacement // ‌ Zero-width non-joiner
	case 0x200D:
		return MyanmarJoiner, NoPlacement // ‍ Zero-width joiner
	case 0x2010:
		return MyanmarPlaceholder, NoPlacement // ‐ Hyphen
	case 0x2011:
		return MyanmarPlaceholder, NoPlacement // ‑ No-break hyphen
	case 0x2012:
		return MyanmarPlaceholder, NoPlacement // ‒ Figure dash
	case 0x2013:
		return MyanmarPlaceholder, NoPlacement // – En dash
	case 0x2014:
		return MyanmarPlaceholder, NoPlacement // — Em dash
	case 0x25CC:
		return MyanmarDottedCircle, NoPlacement // ◌ Dotted circle
	}
	return MyanmarNone, NoPlacement
}
