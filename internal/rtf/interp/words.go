package interp

// controlKinds classifies every recognized control word and control symbol,
// drawn from the Word 2007 RTF specification (1.9.1) tables plus the
// unofficial CocoaRTF, OpenOffice and Scrivener extensions observed in the
// wild. Names listed in more than one upstream table keep their
// highest-precedence classification: destination, then symbol, then value,
// flag and toggle.
var controlKinds = buildControlKinds()

func buildControlKinds() map[string]controlKind {
	m := make(map[string]controlKind, 2048)
	add := func(kind controlKind, names ...string) {
		for _, name := range names {
			if _, ok := m[name]; !ok {
				m[name] = kind
			}
		}
	}

	// Destination control words.
	add(ctrlDest,
		"aftncn", "aftnsep", "aftnsepc", "annotation", "atnauthor", "atndate", "atnicn",
		"atnid", "atnparent", "atnref", "atntime", "atrfend", "atrfstart", "author",
		"background", "bkmkend", "bkmkstart", "blipuid", "buptim", "category",
		"colorschememapping", "colortbl", "comment", "company", "creatim", "datafield",
		"datastore", "defchp", "defpap", "do", "doccomm", "docvar", "dptxbxtext", "ebcend",
		"ebcstart", "factoidname", "falt", "fchars", "ffdeftext", "ffentrymcr", "ffexitmcr",
		"ffformat", "ffhelptext", "ffl", "ffname", "ffstattext", "field", "file", "filetbl",
		"fldinst", "fldrslt", "fldtype", "fname", "fontemb", "fontfile", "fonttbl", "footer",
		"footerf", "footerl", "footerr", "footnote", "formfield", "ftncn", "ftnsep", "ftnsepc",
		"g", "generator", "gridtbl", "header", "headerf", "headerl", "headerr", "hl", "hlfr",
		"hlinkbase", "hlloc", "hlsrc", "hsv", "htmltag", "info", "keycode", "keywords",
		"latentstyles", "lchars", "levelnumbers", "leveltext", "lfolevel", "linkval", "list",
		"listlevel", "listname", "listoverride", "listoverridetable", "listpicture",
		"liststylename", "listtable", "listtext", "lsdlockedexcept", "macc", "maccPr",
		"mailmerge", "maln", "malnScr", "manager", "margPr", "mbar", "mbarPr", "mbaseJc",
		"mbegChr", "mborderBox", "mborderBoxPr", "mbox", "mboxPr", "mchr", "mcount", "mctrlPr",
		"md", "mdeg", "mdegHide", "mden", "mdiff", "mdPr", "me", "mendChr", "meqArr",
		"meqArrPr", "mf", "mfName", "mfPr", "mfunc", "mfuncPr", "mgroupChr", "mgroupChrPr",
		"mgrow", "mhideBot", "mhideLeft", "mhideRight", "mhideTop", "mhtmltag", "mlim",
		"mlimloc", "mlimlow", "mlimlowPr", "mlimupp", "mlimuppPr", "mm", "mmaddfieldname",
		"mmath", "mmathPict", "mmathPr", "mmaxdist", "mmc", "mmcJc", "mmconnectstr",
		"mmconnectstrdata", "mmcPr", "mmcs", "mmdatasource", "mmheadersource", "mmmailsubject",
		"mmodso", "mmodsofilter", "mmodsofldmpdata", "mmodsomappedname", "mmodsoname",
		"mmodsorecipdata", "mmodsosort", "mmodsosrc", "mmodsotable", "mmodsoudl",
		"mmodsoudldata", "mmodsouniquetag", "mmPr", "mmquery", "mmr", "mnary", "mnaryPr",
		"mnoBreak", "mnum", "mobjDist", "moMath", "moMathPara", "moMathParaPr", "mopEmu",
		"mphant", "mphantPr", "mplcHide", "mpos", "mr", "mrad", "mradPr", "mrPr", "msepChr",
		"mshow", "mshp", "msPre", "msPrePr", "msSub", "msSubPr", "msSubSup", "msSubSupPr",
		"msSup", "msSupPr", "mstrikeBLTR", "mstrikeH", "mstrikeTLBR", "mstrikeV", "msub",
		"msubHide", "msup", "msupHide", "mtransp", "mtype", "mvertJc", "mvfmf", "mvfml",
		"mvtof", "mvtol", "mzeroAsc", "mzeroDesc", "mzeroWid", "nesttableprops", "nextfile",
		"nonesttables", "objalias", "objclass", "objdata", "object", "objname", "objsect",
		"objtime", "oldcprops", "oldpprops", "oldsprops", "oldtprops", "oleclsid", "operator",
		"panose", "password", "passwordhash", "pgp", "pgptbl", "picprop", "pict", "pn",
	)
	add(ctrlDestValue, "pnseclvl")
	add(ctrlIgnore, "pntext")
	add(ctrlDest,
		"pntxta", "pntxtb", "printim", "private", "propname", "protend", "protstart",
		"protusertbl", "pxe", "result", "revtbl", "revtim", "rsidtbl",
	)
	add(ctrlDestText, "rtf")
	add(ctrlDest,
		"rxe", "shp", "shpgrp", "shpinst", "shppict", "shprslt", "shptxt", "sn", "sp",
		"staticval", "stylesheet", "subject", "sv", "svb", "tc", "template", "themedata",
		"title", "txe", "ud", "upr", "userprops", "wgrffmtfilter", "windowcaption",
		"writereservation", "writereservhash", "xe", "xform", "xmlattrname", "xmlattrvalue",
		"xmlclose", "xmlname", "xmlnstbl", "xmlopen", "NeXTGraphic",
	)
	add(ctrlDestValue, "glid")
	add(ctrlDest, "levelmarker")
	add(ctrlDestValue, "hyphen", "pgdsc", "pgdscno")
	add(ctrlDest, "pgdsctbl", "expandedcolortbl")

	// Control symbols and character-producing control words.
	add(ctrlEmit, "'")
	add(ctrlIgnore, "-")
	add(ctrlOptionalNext, "*")
	add(ctrlIgnore, ":")
	add(ctrlEmit, "\\", "_", "{")
	add(ctrlIgnore, "|")
	add(ctrlEmit, "}", "~", "bullet")
	add(ctrlEmitValue, "cell")
	add(ctrlIgnore,
		"chatn", "chdate", "chdpa", "chdpl", "chftn", "chftnsep", "chftnsepc", "chpgn",
		"chtime", "column",
	)
	add(ctrlEmit, "emdash", "emspace", "endash", "enspace", "ldblquote", "line", "lquote")
	add(ctrlIgnore, "ltrmark", "nestcell", "nestrow")
	add(ctrlEmit, "page", "par")
	add(ctrlIgnore, "qmspace")
	add(ctrlEmit, "rdblquote")
	add(ctrlEmitValue, "row")
	add(ctrlEmit, "rquote")
	add(ctrlIgnore, "rtlmark")
	add(ctrlEmit, "sect")
	add(ctrlIgnore, "sectnum")
	add(ctrlEmit, "tab")
	add(ctrlIgnore, "zwbo", "zwj", "zwnbo", "zwnj")
	add(ctrlEmit, "\"", "\n", "\r", "\t", " ", "/")

	// Control words carrying a numeric value.
	add(ctrlValue,
		"absh", "absw", "acf", "adeff", "adeflang", "adn", "aexpnd", "af", "afs", "aftnstart",
		"alang", "animtext",
	)
	add(ctrlEncodingArg, "ansicpg")
	add(ctrlValue,
		"aup", "bin", "binfsxn", "binsxn", "bkmkcolf", "bkmkcoll", "bliptag", "blipupi",
		"blue", "bookfoldsheets", "brdrart", "brdrcf", "brdrw", "brsp", "cb", "cbpat", "cchs",
		"cellx", "cf", "cfpat", "cgrid", "charrsid", "charscalex", "chcbpat", "chcfpat",
		"chhres", "chshdng", "clcbpat", "clcbpatraw", "clcfpat", "clcfpatraw", "cldelauth",
		"cldeldttm", "clftsWidth", "clinsauth", "clinsdttm", "clmrgdauth", "clmrgddttm",
		"clpadb", "clpadfb", "clpadfl", "clpadfr", "clpadft", "clpadl", "clpadr", "clpadt",
		"clspb", "clspfb", "clspfl", "clspfr", "clspft", "clspl", "clspr", "clspt", "clshdng",
		"clshdngraw", "clwWidth", "colno", "cols", "colsr", "colsx", "colw", "cpg", "crauth",
		"crdate", "cs", "cshade", "ctint", "cts", "cufi", "culi", "curi", "deff", "deflang",
		"deflangfe", "deftab", "delrsid", "dfrauth", "dfrdate", "dfrmtxtx", "dfrmtxty",
		"dfrstart", "dfrstop", "dfrxst", "dghorigin", "dghshow", "dghspace", "dgvorigin",
		"dgvshow", "dgvspace", "dibitmap", "dn", "doctype", "dodhgt", "donotembedlingdata",
		"donotembedsysfont", "dpaendl", "dpaendw", "dpastartl", "dpastartw", "dpcoa",
		"dpcodescent", "dpcolength", "dpcooffset", "dpcount", "dpfillbgcb", "dpfillbgcg",
		"dpfillbgcr", "dpfillbggray", "dpfillfgcb", "dpfillfgcg", "dpfillfgcr", "dpfillfggray",
		"dpfillpat", "dplinecob", "dplinecog", "dplinecor", "dplinegray", "dplinew",
		"dppolycount", "dpptx", "dppty", "dpshadx", "dpshady", "dptxbxmar", "dpx", "dpxsize",
		"dpy", "dpysize", "dropcapli", "dropcapt", "ds", "dxfrtext", "dy", "edmins",
		"enforceprot", "expnd", "expndtw", "f", "fbias", "fcharset", "fcs", "fet", "ffdefres",
		"ffhaslistbox", "ffhps", "ffmaxlen", "ffownhelp", "ffownstat", "ffprot", "ffrecalc",
		"ffres", "ffsize", "fftype", "fftypetxt", "fi", "fid", "fittext", "fn", "footery",
		"fosnum", "fprq", "frelative", "fromhtml", "fs", "ftnstart", "gcw", "green",
		"grfdocevents", "gutter", "guttersxn", "headery", "highlight", "horzvert", "hr",
		"hres", "hyphconsec", "hyphhotz", "id", "ignoremixedcontent", "ilfomacatclnup", "ilvl",
		"insrsid", "ipgp", "irowband", "irow", "itap", "kerning", "ksulang", "lang", "langfe",
		"langfenp", "langnp", "lbr", "level", "levelfollow", "levelindent", "leveljc",
		"leveljcn", "levellegal", "levelnfc", "levelnfcn", "levelnorestart", "levelold",
		"levelpicture", "levelprev", "levelprevspace", "levelspace", "levelstartat",
		"leveltemplateid", "li", "linemod", "linestart", "linestarts", "linex", "lin", "lisa",
		"lisb", "listid", "listoverridecount", "listoverrideformat", "listrestarthdn",
		"listsimple", "liststyleid", "listtemplateid", "ls", "lsdlocked", "lsdlockeddef",
		"lsdpriority", "lsdprioritydef", "lsdqformat", "lsdqformatdef", "lsdsemihidden",
		"lsdsemihiddendef", "lsdstimax", "lsdunhideused", "lsdunhideuseddef", "margb",
		"margbsxn", "margl", "marglsxn", "margr", "margrsxn", "margSz", "margt", "margtsxn",
		"mbrk", "mbrkBin", "mbrkBinSub", "mcGp", "mcGpRule", "mcSp", "mdefJc", "mdiffSty",
		"mdispdef", "mdispDef", "min", "minterSp", "mintLim", "mintraSp", "mjc", "mlMargin",
		"mmathFont", "mmerrors", "mmjdsotype", "mmodsoactive", "mmodsocoldelim",
		"mmodsocolumn", "mmodsodynaddr", "mmodsofhdr", "mmodsofmcolumn", "mmodsohash",
		"mmodsolid", "mmreccur", "mnaryLim", "mo", "mpostSp", "mpreSp", "mrMargin", "mrSp",
		"mrSpRule", "mscr", "msmallFrac", "msty", "mvauth", "mvdate", "mwrapIndent",
		"mwrapRight", "nofchars", "nofcharsws", "nofpages", "nofwords", "objalign", "objcropb",
		"objcropl", "objcropr", "objcropt", "objh", "objscalex", "objscaley", "objtransy",
		"objw", "ogutter", "outlinelevel", "paperh", "paperw", "pararsid", "pgbrdropt",
		"pghsxn", "pgnhn", "pgnstart", "pgnstarts", "pgnx", "pgny", "pgwsxn", "picbpp",
		"piccropb", "piccropl", "piccropr", "piccropt", "pich", "pichgoal", "picscalex",
		"picscaley", "picw", "picwgoal", "pmmetafile", "pncf", "pnf", "pnfs", "pnindent",
		"pnlvl", "pnrauth", "pnrdate", "pnrnfc", "pnrpnbr", "pnrrgb", "pnrstart", "pnrstop",
		"pnrxst", "pnsp", "pnstart", "posnegx", "posnegy", "posx", "posy", "prauth", "prdate",
		"proptype", "protlevel", "psz", "pwd", "qk", "red", "relyonvml", "revauth",
		"revauthdel", "revbar", "revdttm", "revdttmdel", "revprop", "ri", "rin", "rsid",
		"rsidroot", "s", "sa", "saftnstart", "sb", "sbasedon", "sec", "sectexpand",
		"sectlinegrid", "sectrsid", "sftnstart", "shading", "showplaceholdtext",
		"showxmlerrors", "shpbottom", "shpfblwtxt", "shpfhdr", "shpleft", "shplid", "shpright",
		"shptop", "shpwrk", "shpwr", "shpz", "sl", "slink", "slmult", "snext", "softlheight",
		"spriority", "srauth", "srdate", "ssemihidden", "stextflow", "stshfbi", "stshfdbch",
		"stshfhich", "stshfloch", "stylesortmethod", "styrsid", "subdocument", "sunhideused",
		"tb", "tblind", "tblindtype", "tblrsid", "tcf", "tcl", "tdfrmtxtBottom",
		"tdfrmtxtLeft", "tdfrmtxtRight", "tdfrmtxtTop", "themelang", "themelangcs",
		"themelangfe", "tposnegx", "tposnegy", "tposx", "tposy", "trackformatting",
		"trackmoves", "trauth", "trcbpat", "trcfpat", "trdate", "trftsWidthA", "trftsWidthB",
		"trftsWidth", "trgaph", "trleft", "trpaddb", "trpaddfb", "trpaddfl", "trpaddfr",
		"trpaddft", "trpaddl", "trpaddr", "trpaddt", "trpadob", "trpadofb", "trpadofl",
		"trpadofr", "trpadoft", "trpadol", "trpador", "trpadot", "trpat", "trrh", "trshdng",
		"trspdb", "trspdfb", "trspdfl", "trspdfr", "trspdft", "trspdl", "trspdr", "trspdt",
		"trspob", "trspofb", "trspofl", "trspofr", "trspoft", "trspol", "trspor", "trspot",
		"trwWidthA", "trwWidthB", "trwWidth", "ts", "tscbandsh", "tscbandsv", "tscellcbpat",
		"tscellcfpat", "tscellpaddb", "tscellpaddfb", "tscellpaddfl", "tscellpaddfr",
		"tscellpaddft", "tscellpaddl", "tscellpaddr", "tscellpaddt", "tscellpct",
		"tscellwidth", "tscellwidthfts", "twoinone", "tx",
	)
	add(ctrlUnicode, "u")
	add(ctrlValue,
		"uc", "ulc", "up", "urtf", "validatexml", "vern", "version", "viewbksp", "viewkind",
		"viewscale", "viewzk", "wbitmap", "wbmbitspixel", "wbmplanes", "wbmwidthbyte",
		"wmetafile", "xef", "xmlattrns", "xmlns", "yr", "yts", "AppleTypeServicesU",
		"CocoaLigature", "cocoartf", "cocoasubrtf", "expansion", "fsmilli", "glcol",
		"obliqueness", "pardeftab", "readonlydoc", "shadr", "shadx", "shady", "slleading",
		"slmaximum", "slminimum", "strikec", "strikestyle", "strokec", "strokewidth",
		"ulstyle", "viewh", "vieww", "width", "height", "hyphlead", "hyphtrail", "pgdscuse",
	)

	// Flag control words.
	add(ctrlValue,
		"abslock", "additive", "adjustright", "aenddoc", "aendnotes", "afelev", "aftnbj",
		"aftnnalc", "aftnnar", "aftnnauc", "aftnnchi", "aftnnchosung", "aftnncnum",
		"aftnndbar", "aftnndbnum", "aftnndbnumd", "aftnndbnumk", "aftnndbnumt", "aftnnganada",
		"aftnngbnum", "aftnngbnumd", "aftnngbnumk", "aftnngbnuml", "aftnnrlc", "aftnnruc",
		"aftnnzodiac", "aftnnzodiacd", "aftnnzodiacl", "aftnrestart", "aftnrstcont", "aftntj",
		"allowfieldendsel", "allprot", "alntblind", "alt", "annotprot",
	)
	add(ctrlEncodingFlag, "ansi")
	add(ctrlValue,
		"ApplyBrkRules", "asianbrkrule", "autofmtoverride", "bdbfhdr", "bdrrlswsix", "bgbdiag",
		"bgcross", "bgdcross", "bgdkbdiag", "bgdkcross", "bgdkdcross", "bgdkfdiag",
		"bgdkhoriz", "bgdkvert", "bgfdiag", "bghoriz", "bgvert", "bkmkpub", "bookfold",
		"bookfoldrev", "box", "brdrb", "brdrbar", "brdrbtw", "brdrdash", "brdrdashd",
		"brdrdashdd", "brdrdashdot", "brdrdashdotdot", "brdrdashdotstr", "brdrdashsm",
		"brdrdb", "brdrdot", "brdremboss", "brdrengrave", "brdrframe", "brdrhair", "brdrinset",
		"brdrl", "brdrnil", "brdrnone", "brdroutset", "brdrr", "brdrs", "brdrsh", "brdrt",
		"brdrtbl", "brdrth", "brdrthtnlg", "brdrthtnmg", "brdrthtnsg", "brdrtnthlg",
		"brdrtnthmg", "brdrtnthsg", "brdrtnthtnlg", "brdrtnthtnmg", "brdrtnthtnsg",
		"brdrtriple", "brdrwavy", "brdrwavydb", "brkfrm", "bxe", "caccentfive", "caccentfour",
		"caccentone", "caccentsix", "caccentthree", "caccenttwo", "cachedcolbal",
		"cbackgroundone", "cbackgroundtwo", "cfollowedhyperlink", "chbgbdiag", "chbgcross",
		"chbgdcross", "chbgdkbdiag", "chbgdkcross", "chbgdkdcross", "chbgdkfdiag",
		"chbgdkhoriz", "chbgdkvert", "chbgfdiag", "chbghoriz", "chbgvert", "chbrdr",
		"chyperlink", "clbgbdiag", "clbgcross", "clbgdcross", "clbgdkbdiag", "clbgdkcross",
		"clbgdkdcross", "clbgdkfdiag", "clbgdkhor", "clbgdkvert", "clbgfdiag", "clbghoriz",
		"clbgvert", "clbrdrb", "clbrdrl", "clbrdrr", "clbrdrt", "cldel", "cldgll", "cldglu",
		"clFitText", "clhidemark", "clins", "clmgf", "clmrg", "clmrgd", "clmrgdr", "clNoWrap",
		"clshdrawnil", "clsplit", "clsplitr", "cltxbtlr", "cltxlrtb", "cltxlrtbv", "cltxtbrl",
		"cltxtbrlv", "clvertalb", "clvertalc", "clvertalt", "clvmgf", "clvmrg", "cmaindarkone",
		"cmaindarktwo", "cmainlightone", "cmainlighttwo", "collapsed", "contextualspace",
		"ctextone", "ctexttwo", "ctrl", "cvmme", "date", "dbch", "defformat", "defshp",
		"dgmargin", "dgsnap", "dntblnsbdb", "dobxcolumn", "dobxmargin", "dobxpage",
		"dobymargin", "dobypage", "dobypara", "doctemp", "dolock", "donotshowcomments",
		"donotshowinsdel", "donotshowmarkup", "donotshowprops", "dpaendhol", "dpaendsol",
		"dparc", "dparcflipx", "dparcflipy", "dpastarthol", "dpastartsol", "dpcallout",
		"dpcoaccent", "dpcobestfit", "dpcoborder", "dpcodabs", "dpcodbottom", "dpcodcenter",
		"dpcodtop", "dpcominusx", "dpcominusy", "dpcosmarta", "dpcotdouble", "dpcotright",
		"dpcotsingle", "dpcottriple", "dpellipse", "dpendgroup", "dpfillbgpal", "dpfillfgpal",
		"dpgroup", "dpline", "dplinedado", "dplinedadodo", "dplinedash", "dplinedot",
		"dplinehollow", "dplinepal", "dplinesolid", "dppolygon", "dppolyline", "dprect",
		"dproundr", "dpshadow", "dptxbtlr", "dptxbx", "dptxlrtb", "dptxlrtbv", "dptxtbrl",
		"dptxtbrlv", "emfblip", "enddoc", "endnhere", "endnotes", "expshrtn", "faauto",
		"facenter", "facingp", "fafixed", "fahang", "faroman", "favar", "fbidi", "fbidis",
		"fbimajor", "fbiminor", "fdbmajor", "fdbminor", "fdecor", "felnbrelev", "fetch",
		"fhimajor", "fhiminor", "fjgothic", "fjminchou", "fldalt", "flddirty", "fldedit",
		"fldlock", "fldpriv", "flomajor", "flominor", "fmodern", "fnetwork", "fnil",
		"fnonfilesys", "forceupgrade", "formdisp", "formprot", "formshade", "fracwidth",
		"frmtxbtlr", "frmtxlrtb", "frmtxlrtbv", "frmtxtbrl", "frmtxtbrlv", "froman",
		"fromtext", "fscript", "fswiss", "ftech", "ftnalt", "ftnbj", "ftnil", "ftnlytwnine",
		"ftnnalc", "ftnnar", "ftnnauc", "ftnnchi", "ftnnchosung", "ftnncnum", "ftnndbar",
		"ftnndbnum", "ftnndbnumd", "ftnndbnumk", "ftnndbnumt", "ftnnganada", "ftnngbnum",
		"ftnngbnumd", "ftnngbnumk", "ftnngbnuml", "ftnnrlc", "ftnnruc", "ftnnzodiac",
		"ftnnzodiacd", "ftnnzodiacl", "ftnrestart", "ftnrstcont", "ftnrstpg", "ftntj",
		"fttruetype", "fvaliddos", "fvalidhpfs", "fvalidmac", "fvalidntfs", "gutterprl",
		"hich", "horzdoc", "horzsect", "hrule", "htmautsp", "htmlbase", "hwelev", "indmirror",
		"indrlsweleven", "intbl", "ixe", "jcompress", "jexpand", "jis", "jpegblip", "jsksu",
		"keep", "keepn", "krnprsnet", "jclisttab", "landscape", "lastrow",
		"levelpicturenosize", "linebetcol", "linecont", "lineppage", "linerestart", "linkself",
		"linkstyles", "listhybrid", "listoverridestartat", "lnbrkrule", "lndscpsxn",
		"lnongrid", "loch", "ltrch", "ltrdoc", "ltrpar", "ltrrow", "ltrsect", "lvltentative",
		"lytcalctblwd", "lytexcttp", "lytprtmet", "lyttblrtgr",
	)
	add(ctrlEncodingFlag, "mac")
	add(ctrlValue,
		"macpict", "makebackup", "margmirror", "margmirsxn", "mlit", "mmattach",
		"mmblanklines", "mmdatatypeaccess", "mmdatatypeexcel", "mmdatatypefile",
		"mmdatatypeodbc", "mmdatatypeodso", "mmdatatypeqt", "mmdefaultsql", "mmdestemail",
		"mmdestfax", "mmdestnewdoc", "mmdestprinter", "mmfttypeaddress", "mmfttypebarcode",
		"mmfttypedbcolumn", "mmfttypemapped", "mmfttypenull", "mmfttypesalutation",
		"mmlinktoquery", "mmmaintypecatalog", "mmmaintypeemail", "mmmaintypeenvelopes",
		"mmmaintypefax", "mmmaintypelabels", "mmmaintypeletters", "mmshowdata", "mnor",
		"msmcap", "muser", "mvf", "mvt", "newtblstyruls", "noafcnsttbl", "nobrkwrptbl",
		"nocolbal", "nocompatoptions", "nocwrap", "nocxsptable", "noextrasprl",
		"nofeaturethrottle", "nogrowautofit", "noindnmbrts", "nojkernpunct", "nolead",
		"noline", "nolnhtadjtbl", "nonshppict", "nooverflow", "noproof", "noqfpromote",
		"nosectexpand", "nosnaplinegrid", "nospaceforul", "nosupersub", "notabind",
		"notbrkcnstfrctbl", "notcvasp", "notvatxbx", "nouicompat", "noultrlspc", "nowidctlpar",
		"nowrap", "nowwrap", "noxlattoyen", "objattph", "objautlink", "objemb", "objhtml",
		"objicemb", "objlink", "objlock", "objocx", "objpub", "objsetsize", "objsub",
		"objupdate", "oldas", "oldlinewrap", "otblrul", "overlay", "pagebb", "pard",
	)
	add(ctrlEncodingFlag, "pc", "pca")
	add(ctrlValue,
		"pgbrdrb", "pgbrdrfoot", "pgbrdrhead", "pgbrdrl", "pgbrdrr", "pgbrdrsnap", "pgbrdrt",
		"pgnbidia", "pgnbidib", "pgnchosung", "pgncnum", "pgncont", "pgndbnum", "pgndbnumd",
		"pgndbnumk", "pgndbnumt", "pgndec", "pgndecd", "pgnganada", "pgngbnum", "pgngbnumd",
		"pgngbnumk", "pgngbnuml", "pgnhindia", "pgnhindib", "pgnhindic", "pgnhindid",
		"pgnhnsc", "pgnhnsh", "pgnhnsm", "pgnhnsn", "pgnhnsp", "pgnid", "pgnlcltr", "pgnlcrm",
		"pgnrestart", "pgnthaia", "pgnthaib", "pgnthaic", "pgnucltr", "pgnucrm", "pgnvieta",
		"pgnzodiac", "pgnzodiacd", "pgnzodiacl", "phcol", "phmrg", "phpg", "picbmp",
		"picscaled", "pindtabqc", "pindtabql", "pindtabqr", "plain", "pmartabqc", "pmartabql",
		"pmartabqr", "pnacross", "pnaiu", "pnaiud", "pnaiueo", "pnaiueod", "pnbidia",
		"pnbidib", "pncard", "pnchosung", "pncnum", "pndbnum", "pndbnumd", "pndbnumk",
		"pndbnuml", "pndbnumt", "pndec", "pndecd", "pnganada", "pngblip", "pngbnum",
		"pngbnumd", "pngbnumk", "pngbnuml", "pnhang", "pniroha", "pnirohad", "pnlcltr",
		"pnlcrm", "pnlvlblt", "pnlvlbody", "pnlvlcont", "pnnumonce", "pnord", "pnordt",
		"pnprev", "pnqc", "pnql", "pnqr", "pnrestart", "pnrnot", "pnucltr", "pnucrm", "pnuld",
		"pnuldash", "pnuldashd", "pnuldashdd", "pnuldb", "pnulhair", "pnulnone", "pnulth",
		"pnulw", "pnulwave", "pnzodiac", "pnzodiacd", "pnzodiacl", "posxc", "posxi", "posxl",
		"posxo", "posxr", "posyb", "posyc", "posyil", "posyin", "posyout", "posyt", "prcolbl",
		"printdata", "psover", "ptabldot", "ptablmdot", "ptablminus", "ptablnone",
		"ptabluscore", "pubauto", "pvmrg", "pvpara", "pvpg", "qc", "qd", "qj", "ql", "qr",
		"qt", "rawclbgdkbdiag", "rawclbgbdiag", "rawclbgcross", "rawclbgdcross",
		"rawclbgdkcross", "rawclbgdkdcross", "rawclbgdkfdiag", "rawclbgdkhor", "rawclbgdkvert",
		"rawclbgfdiag", "rawclbghoriz", "rawclbgvert", "readonlyrecommended", "readprot",
		"remdttm", "rempersonalinfo", "revisions", "revprot", "rsltbmp", "rslthtml",
		"rsltmerge", "rsltpict", "rsltrtf", "rslttxt", "rtlch", "rtldoc", "rtlgutter",
		"rtlpar", "rtlrow", "rtlsect", "saftnnalc", "saftnnar", "saftnnauc", "saftnnchi",
		"saftnnchosung", "saftnncnum", "saftnndbar", "saftnndbnum", "saftnndbnumd",
		"saftnndbnumk", "saftnndbnumt", "saftnnganada", "saftnngbnum", "saftnngbnumd",
		"saftnngbnumk", "saftnngbnuml", "saftnnrlc", "saftnnruc", "saftnnzodiac",
		"saftnnzodiacd", "saftnnzodiacl", "saftnrestart", "saftnrstcont", "sautoupd",
		"saveinvalidxml", "saveprevpict", "sbkcol", "sbkeven", "sbknone", "sbkodd", "sbkpage",
		"sbys", "scompose", "sectd", "sectdefaultcl", "sectspecifycl", "sectspecifygenN",
		"sectspecifyl", "sectunlocked", "sftnbj", "sftnnalc", "sftnnar", "sftnnauc",
		"sftnnchi", "sftnnchosung", "sftnncnum", "sftnndbar", "sftnndbnum", "sftnndbnumd",
		"sftnndbnumk", "sftnndbnumt", "sftnnganada", "sftnngbnum", "sftnngbnumd",
		"sftnngbnumk", "sftnngbnuml", "sftnnrlc", "sftnnruc", "sftnnzodiac", "sftnnzodiacd",
		"sftnnzodiacl", "sftnrestart", "sftnrstcont", "sftnrstpg", "sftntj", "shidden",
		"shift", "shpbxcolumn", "shpbxignore", "shpbxmargin", "shpbxpage", "shpbyignore",
		"shpbymargin", "shpbypage", "shpbypara", "shplockanchor", "slocked",
		"snaptogridincell", "softcol", "softline", "softpage", "spersonal", "spltpgpar",
		"splytwnine", "sprsbsp", "sprslnsp", "sprsspbf", "sprstsm", "sprstsp", "spv",
		"sqformat", "sreply", "stylelock", "stylelockbackcomp", "stylelockenforced",
		"stylelockqfset", "stylelocktheme", "sub", "subfontbysize", "super", "swpbdr",
		"tabsnoovrlp", "taprtl", "tbllkbestfit", "tbllkborder", "tbllkcolor", "tbllkfont",
		"tbllkhdrcols", "tbllkhdrrows", "tbllklastcol", "tbllklastrow", "tbllknocolband",
		"tbllknorowband", "tbllkshading", "tcelld", "tcn", "time", "titlepg", "tldot", "tleq",
		"tlhyph", "tlmdot", "tlth", "tlul", "toplinepunct", "tphcol", "tphmrg", "tphpg",
		"tposxc", "tposxi", "tposxl", "tposxo", "tposxr", "tposyb", "tposyc", "tposyil",
		"tposyin", "tposyout", "tposyt", "tpvmrg", "tpvpara", "tpvpg", "tqc", "tqdec", "tqr",
		"transmf", "trbgbdiag", "trbgcross", "trbgdcross", "trbgdkbdiag", "trbgdkcross",
		"trbgdkdcross", "trbgdkfdiag", "trbgdkhor", "trbgdkvert", "trbgfdiag", "trbghoriz",
		"trbgvert", "trbrdrb", "trbrdrh", "trbrdrl", "trbrdrr", "trbrdrt", "trbrdrv", "trhdr",
		"trkeep", "trkeepfollow", "trowd", "trqc", "trql", "trqr", "truncatefontheight",
		"truncex", "tsbgbdiag", "tsbgcross", "tsbgdcross", "tsbgdkbdiag", "tsbgdkcross",
		"tsbgdkdcross", "tsbgdkfdiag", "tsbgdkhor", "tsbgdkvert", "tsbgfdiag", "tsbghoriz",
		"tsbgvert", "tsbrdrb", "tsbrdrdgl", "tsbrdrdgr", "tsbrdrh", "tsbrdrl", "tsbrdrr",
		"tsbrdrt", "tsbrdrv", "tscbandhorzeven", "tscbandhorzodd", "tscbandverteven",
		"tscbandvertodd", "tscfirstcol", "tscfirstrow", "tsclastcol", "tsclastrow",
		"tscnecell", "tscnwcell", "tscsecell", "tscswcell", "tsd", "tsnowrap", "tsrowd",
		"tsvertalb", "tsvertalc", "tsvertalt", "twoonone", "txbxtwalways", "txbxtwfirst",
		"txbxtwfirstlast", "txbxtwlast", "txbxtwno", "uld", "ulnone", "ulw", "useltbaln",
		"usenormstyforlist", "usexform", "utinl", "vertal", "vertalb", "vertalc", "vertalj",
		"vertalt", "vertdoc", "vertsect", "viewnobound", "webhidden", "widctlpar", "widowctrl",
		"wpeqn", "wpjst", "wpsp", "wraparound", "wrapdefault", "wrapthrough", "wraptight",
		"wraptrsp", "wrppunct", "xmlattr", "xmlsdttcell", "xmlsdttpara", "xmlsdttregular",
		"xmlsdttrow", "xmlsdttunknown", "yxe", "outdisponlyhtml", "glnam", "pardirnatural",
		"qnatural",
	)

	// Toggle control words.
	add(ctrlValue,
		"ab", "absnoovrlp", "acaps", "acccircle", "acccomma", "accdot", "accnone",
		"accunderdot", "ai", "aoutl", "ascaps", "ashad", "aspalpha", "aspnum", "astrike",
		"aul", "auld", "auldb", "aulnone", "aulw", "b", "caps", "deleted", "disabled", "embo",
		"htmlrtf", "hyphauto", "hyphcaps", "hyphpar", "i", "impr", "outl", "pnb", "pncaps",
		"pni", "pnscaps", "pnstrike", "pnul", "protect", "revised", "saauto", "sbauto",
		"scaps", "shad", "strike", "striked", "trautofit", "ul", "uldash", "uldashd",
		"uldashdd", "uldb", "ulhair", "ulhwave", "ulldash", "ulth", "ulthd", "ulthdash",
		"ulthdashd", "ulthdashdd", "ulthldash", "ululdbwave", "ulwave", "v", "hyphmax",
		"pgdscnxt",
	)

	return m
}
