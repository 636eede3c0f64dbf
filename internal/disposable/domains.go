package disposable

// defaultDomains is the baked-in disposable-email provider list. Entries
// must be lowercase. The list favors the high-volume providers seen in
// campaign traffic; site-specific additions go through the config file.
var defaultDomains = []string{
	"0-mail.com",
	"10minutemail.com",
	"10minutemail.net",
	"20minutemail.com",
	"33mail.com",
	"anonbox.net",
	"anonymbox.com",
	"bccto.me",
	"binkmail.com",
	"bobmail.info",
	"bugmenot.com",
	"burnermail.io",
	"byom.de",
	"chacuo.net",
	"courriel.fr.nf",
	"dayrep.com",
	"deadaddress.com",
	"despam.it",
	"discard.email",
	"discardmail.com",
	"disposable.com",
	"disposableinbox.com",
	"dispostable.com",
	"dodgeit.com",
	"dontsendmespam.de",
	"dropmail.me",
	"emailondeck.com",
	"emailsensei.com",
	"emailtemporanea.net",
	"emltmp.com",
	"fakeinbox.com",
	"fakemailgenerator.com",
	"filzmail.com",
	"getairmail.com",
	"getnada.com",
	"guerrillamail.biz",
	"guerrillamail.com",
	"guerrillamail.de",
	"guerrillamail.info",
	"guerrillamail.net",
	"guerrillamail.org",
	"guerrillamailblock.com",
	"haltospam.com",
	"harakirimail.com",
	"hidemail.de",
	"hulapla.de",
	"imgof.com",
	"incognitomail.org",
	"jetable.com",
	"jetable.fr.nf",
	"jetable.net",
	"jetable.org",
	"jourrapide.com",
	"kasmail.com",
	"klzlk.com",
	"kurzepost.de",
	"lifebyfood.com",
	"litedrop.com",
	"lroid.com",
	"mail-temporaire.fr",
	"mail.by",
	"mail4trash.com",
	"mailcatch.com",
	"maildrop.cc",
	"maileater.com",
	"mailexpire.com",
	"mailin8r.com",
	"mailinator.com",
	"mailinator.net",
	"mailinator.org",
	"mailinator2.com",
	"mailnesia.com",
	"mailnull.com",
	"mailtemp.info",
	"mailtothis.com",
	"mailzilla.com",
	"meltmail.com",
	"mintemail.com",
	"mohmal.com",
	"mt2015.com",
	"mytrashmail.com",
	"no-spam.ws",
	"nobulk.com",
	"noclickemail.com",
	"nogmailspam.info",
	"nomail.xl.cx",
	"nospam.ze.tc",
	"nospam4.us",
	"nospamfor.us",
	"nowmymail.com",
	"objectmail.com",
	"obobbo.com",
	"odnorazovoe.ru",
	"oneoffemail.com",
	"onewaymail.com",
	"owlpic.com",
	"pookmail.com",
	"proxymail.eu",
	"punkass.com",
	"putthisinyourspamdatabase.com",
	"quickinbox.com",
	"rcpt.at",
	"recode.me",
	"regbypass.com",
	"rmqkr.net",
	"rppkn.com",
	"safe-mail.net",
	"sandelf.de",
	"sharklasers.com",
	"shieldemail.com",
	"sneakemail.com",
	"sofimail.com",
	"sogetthis.com",
	"soodonims.com",
	"spam4.me",
	"spamavert.com",
	"spambob.net",
	"spambog.com",
	"spambog.de",
	"spambog.ru",
	"spambox.us",
	"spamcannon.com",
	"spamcero.com",
	"spamcorptastic.com",
	"spamday.com",
	"spamex.com",
	"spamfree24.com",
	"spamfree24.de",
	"spamfree24.org",
	"spamgourmet.com",
	"spamherelots.com",
	"spamhole.com",
	"spaminator.de",
	"spamkill.info",
	"spaml.com",
	"spaml.de",
	"spammotel.com",
	"spamobox.com",
	"spamspot.com",
	"spamthis.co.uk",
	"spamtroll.net",
	"stuffmail.de",
	"supergreatmail.com",
	"superrito.com",
	"tagyourself.com",
	"teleworm.us",
	"tempemail.com",
	"tempemail.net",
	"tempinbox.com",
	"tempmail.eu",
	"tempmail.it",
	"tempmaildemo.com",
	"tempmailer.com",
	"tempomail.fr",
	"temporaryemail.net",
	"temporaryinbox.com",
	"tempr.email",
	"thankyou2010.com",
	"thisisnotmyrealemail.com",
	"throwawayemailaddress.com",
	"tilien.com",
	"tmailinator.com",
	"tradermail.info",
	"trash-mail.at",
	"trash-mail.com",
	"trash-mail.de",
	"trash2009.com",
	"trashdevil.com",
	"trashemail.de",
	"trashmail.at",
	"trashmail.com",
	"trashmail.de",
	"trashmail.me",
	"trashmail.net",
	"trashmail.org",
	"trashymail.com",
	"trbvm.com",
	"trillianpro.com",
	"tyldd.com",
	"uggsrock.com",
	"veryrealemail.com",
	"vomoto.com",
	"walala.org",
	"wegwerfadresse.de",
	"wegwerfemail.de",
	"wegwerfmail.de",
	"wegwerfmail.net",
	"wegwerfmail.org",
	"wh4f.org",
	"whyspam.me",
	"willselfdestruct.com",
	"wuzup.net",
	"yapped.net",
	"yopmail.com",
	"yopmail.fr",
	"yopmail.net",
	"yuurok.com",
	"zehnminutenmail.de",
	"zippymail.info",
	"zoemail.net",
}
