// Translators for every go-playground/locales base language. Keep sorted.

package dates

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/af"
	"github.com/go-playground/locales/agq"
	"github.com/go-playground/locales/ak"
	"github.com/go-playground/locales/am"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/as"
	"github.com/go-playground/locales/asa"
	"github.com/go-playground/locales/ast"
	"github.com/go-playground/locales/az"
	"github.com/go-playground/locales/bas"
	"github.com/go-playground/locales/be"
	"github.com/go-playground/locales/bem"
	"github.com/go-playground/locales/bez"
	"github.com/go-playground/locales/bg"
	"github.com/go-playground/locales/bm"
	"github.com/go-playground/locales/bn"
	"github.com/go-playground/locales/bo"
	"github.com/go-playground/locales/br"
	"github.com/go-playground/locales/brx"
	"github.com/go-playground/locales/bs"
	"github.com/go-playground/locales/ca"
	"github.com/go-playground/locales/cgg"
	"github.com/go-playground/locales/chr"
	"github.com/go-playground/locales/ckb"
	"github.com/go-playground/locales/cs"
	"github.com/go-playground/locales/cy"
	"github.com/go-playground/locales/da"
	"github.com/go-playground/locales/dav"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/dje"
	"github.com/go-playground/locales/dsb"
	"github.com/go-playground/locales/dua"
	"github.com/go-playground/locales/dyo"
	"github.com/go-playground/locales/dz"
	"github.com/go-playground/locales/ebu"
	"github.com/go-playground/locales/ee"
	"github.com/go-playground/locales/el"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/eo"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/et"
	"github.com/go-playground/locales/eu"
	"github.com/go-playground/locales/ewo"
	"github.com/go-playground/locales/fa"
	"github.com/go-playground/locales/ff"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fil"
	"github.com/go-playground/locales/fo"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/fur"
	"github.com/go-playground/locales/fy"
	"github.com/go-playground/locales/ga"
	"github.com/go-playground/locales/gd"
	"github.com/go-playground/locales/gl"
	"github.com/go-playground/locales/gsw"
	"github.com/go-playground/locales/gu"
	"github.com/go-playground/locales/guz"
	"github.com/go-playground/locales/gv"
	"github.com/go-playground/locales/ha"
	"github.com/go-playground/locales/haw"
	"github.com/go-playground/locales/he"
	"github.com/go-playground/locales/hi"
	"github.com/go-playground/locales/hr"
	"github.com/go-playground/locales/hsb"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/hy"
	"github.com/go-playground/locales/id"
	"github.com/go-playground/locales/ig"
	"github.com/go-playground/locales/ii"
	"github.com/go-playground/locales/is"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/jgo"
	"github.com/go-playground/locales/jmc"
	"github.com/go-playground/locales/ka"
	"github.com/go-playground/locales/kab"
	"github.com/go-playground/locales/kam"
	"github.com/go-playground/locales/kde"
	"github.com/go-playground/locales/kea"
	"github.com/go-playground/locales/khq"
	"github.com/go-playground/locales/ki"
	"github.com/go-playground/locales/kk"
	"github.com/go-playground/locales/kkj"
	"github.com/go-playground/locales/kl"
	"github.com/go-playground/locales/kln"
	"github.com/go-playground/locales/km"
	"github.com/go-playground/locales/kn"
	"github.com/go-playground/locales/ko"
	"github.com/go-playground/locales/kok"
	"github.com/go-playground/locales/ks"
	"github.com/go-playground/locales/ksb"
	"github.com/go-playground/locales/ksf"
	"github.com/go-playground/locales/ksh"
	"github.com/go-playground/locales/kw"
	"github.com/go-playground/locales/ky"
	"github.com/go-playground/locales/lag"
	"github.com/go-playground/locales/lb"
	"github.com/go-playground/locales/lg"
	"github.com/go-playground/locales/lkt"
	"github.com/go-playground/locales/ln"
	"github.com/go-playground/locales/lo"
	"github.com/go-playground/locales/lt"
	"github.com/go-playground/locales/lu"
	"github.com/go-playground/locales/luo"
	"github.com/go-playground/locales/luy"
	"github.com/go-playground/locales/lv"
	"github.com/go-playground/locales/mas"
	"github.com/go-playground/locales/mer"
	"github.com/go-playground/locales/mfe"
	"github.com/go-playground/locales/mg"
	"github.com/go-playground/locales/mgh"
	"github.com/go-playground/locales/mgo"
	"github.com/go-playground/locales/mk"
	"github.com/go-playground/locales/ml"
	"github.com/go-playground/locales/mn"
	"github.com/go-playground/locales/mr"
	"github.com/go-playground/locales/ms"
	"github.com/go-playground/locales/mt"
	"github.com/go-playground/locales/mua"
	"github.com/go-playground/locales/my"
	"github.com/go-playground/locales/naq"
	"github.com/go-playground/locales/nb"
	"github.com/go-playground/locales/nd"
	"github.com/go-playground/locales/ne"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/nmg"
	"github.com/go-playground/locales/nn"
	"github.com/go-playground/locales/nnh"
	"github.com/go-playground/locales/nus"
	"github.com/go-playground/locales/nyn"
	"github.com/go-playground/locales/om"
	"github.com/go-playground/locales/or"
	"github.com/go-playground/locales/os"
	"github.com/go-playground/locales/pa"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/ps"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/pt_BR"
	"github.com/go-playground/locales/qu"
	"github.com/go-playground/locales/rm"
	"github.com/go-playground/locales/rn"
	"github.com/go-playground/locales/ro"
	"github.com/go-playground/locales/rof"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/rw"
	"github.com/go-playground/locales/rwk"
	"github.com/go-playground/locales/sah"
	"github.com/go-playground/locales/saq"
	"github.com/go-playground/locales/sbp"
	"github.com/go-playground/locales/se"
	"github.com/go-playground/locales/seh"
	"github.com/go-playground/locales/ses"
	"github.com/go-playground/locales/sg"
	"github.com/go-playground/locales/shi"
	"github.com/go-playground/locales/si"
	"github.com/go-playground/locales/sk"
	"github.com/go-playground/locales/sl"
	"github.com/go-playground/locales/smn"
	"github.com/go-playground/locales/sn"
	"github.com/go-playground/locales/so"
	"github.com/go-playground/locales/sq"
	"github.com/go-playground/locales/sr"
	"github.com/go-playground/locales/sv"
	"github.com/go-playground/locales/sw"
	"github.com/go-playground/locales/ta"
	"github.com/go-playground/locales/te"
	"github.com/go-playground/locales/teo"
	"github.com/go-playground/locales/th"
	"github.com/go-playground/locales/ti"
	"github.com/go-playground/locales/to"
	"github.com/go-playground/locales/tr"
	"github.com/go-playground/locales/twq"
	"github.com/go-playground/locales/tzm"
	"github.com/go-playground/locales/ug"
	"github.com/go-playground/locales/uk"
	"github.com/go-playground/locales/ur"
	"github.com/go-playground/locales/uz"
	"github.com/go-playground/locales/vai"
	"github.com/go-playground/locales/vi"
	"github.com/go-playground/locales/vun"
	"github.com/go-playground/locales/wae"
	"github.com/go-playground/locales/xog"
	"github.com/go-playground/locales/yav"
	"github.com/go-playground/locales/yi"
	"github.com/go-playground/locales/yo"
	"github.com/go-playground/locales/yue"
	"github.com/go-playground/locales/zgh"
	"github.com/go-playground/locales/zh"
	"github.com/go-playground/locales/zu"
)

// bundled holds every base language plus the regional variants whose
// long date differs from the base in common use.
var bundled = []locales.Translator{
	af.New(),
	agq.New(),
	ak.New(),
	am.New(),
	ar.New(),
	as.New(),
	asa.New(),
	ast.New(),
	az.New(),
	bas.New(),
	be.New(),
	bem.New(),
	bez.New(),
	bg.New(),
	bm.New(),
	bn.New(),
	bo.New(),
	br.New(),
	brx.New(),
	bs.New(),
	ca.New(),
	cgg.New(),
	chr.New(),
	ckb.New(),
	cs.New(),
	cy.New(),
	da.New(),
	dav.New(),
	de.New(),
	dje.New(),
	dsb.New(),
	dua.New(),
	dyo.New(),
	dz.New(),
	ebu.New(),
	ee.New(),
	el.New(),
	en.New(),
	en_GB.New(),
	eo.New(),
	es.New(),
	et.New(),
	eu.New(),
	ewo.New(),
	fa.New(),
	ff.New(),
	fi.New(),
	fil.New(),
	fo.New(),
	fr.New(),
	fur.New(),
	fy.New(),
	ga.New(),
	gd.New(),
	gl.New(),
	gsw.New(),
	gu.New(),
	guz.New(),
	gv.New(),
	ha.New(),
	haw.New(),
	he.New(),
	hi.New(),
	hr.New(),
	hsb.New(),
	hu.New(),
	hy.New(),
	id.New(),
	ig.New(),
	ii.New(),
	is.New(),
	it.New(),
	ja.New(),
	jgo.New(),
	jmc.New(),
	ka.New(),
	kab.New(),
	kam.New(),
	kde.New(),
	kea.New(),
	khq.New(),
	ki.New(),
	kk.New(),
	kkj.New(),
	kl.New(),
	kln.New(),
	km.New(),
	kn.New(),
	ko.New(),
	kok.New(),
	ks.New(),
	ksb.New(),
	ksf.New(),
	ksh.New(),
	kw.New(),
	ky.New(),
	lag.New(),
	lb.New(),
	lg.New(),
	lkt.New(),
	ln.New(),
	lo.New(),
	lt.New(),
	lu.New(),
	luo.New(),
	luy.New(),
	lv.New(),
	mas.New(),
	mer.New(),
	mfe.New(),
	mg.New(),
	mgh.New(),
	mgo.New(),
	mk.New(),
	ml.New(),
	mn.New(),
	mr.New(),
	ms.New(),
	mt.New(),
	mua.New(),
	my.New(),
	naq.New(),
	nb.New(),
	nd.New(),
	ne.New(),
	nl.New(),
	nmg.New(),
	nn.New(),
	nnh.New(),
	nus.New(),
	nyn.New(),
	om.New(),
	or.New(),
	os.New(),
	pa.New(),
	pl.New(),
	ps.New(),
	pt.New(),
	pt_BR.New(),
	qu.New(),
	rm.New(),
	rn.New(),
	ro.New(),
	rof.New(),
	ru.New(),
	rw.New(),
	rwk.New(),
	sah.New(),
	saq.New(),
	sbp.New(),
	se.New(),
	seh.New(),
	ses.New(),
	sg.New(),
	shi.New(),
	si.New(),
	sk.New(),
	sl.New(),
	smn.New(),
	sn.New(),
	so.New(),
	sq.New(),
	sr.New(),
	sv.New(),
	sw.New(),
	ta.New(),
	te.New(),
	teo.New(),
	th.New(),
	ti.New(),
	to.New(),
	tr.New(),
	twq.New(),
	tzm.New(),
	ug.New(),
	uk.New(),
	ur.New(),
	uz.New(),
	vai.New(),
	vi.New(),
	vun.New(),
	wae.New(),
	xog.New(),
	yav.New(),
	yi.New(),
	yo.New(),
	yue.New(),
	zgh.New(),
	zh.New(),
	zu.New(),
}
