package dts

// NormalTable decodes 8-bit encoded vertex normals.
var NormalTable = [256]Point{
	{X: 0.565061, Y: -0.270644, Z: -0.779396},
	{X: -0.309804, Y: -0.731114, Z: 0.607860},
	{X: -0.867412, Y: 0.472957, Z: 0.154619},
	{X: -0.757488, Y: 0.498188, Z: -0.421925},
	{X: 0.306834, Y: -0.915340, Z: 0.260778},
	{X: 0.098754, Y: 0.639153, Z: -0.762713},
	{X: 0.713706, Y: -0.558862, Z: -0.422252},
	{X: -0.890431, Y: -0.407603, Z: -0.202466},
	{X: 0.848050, Y: -0.487612, Z: -0.207475},
	{X: -0.232226, Y: 0.776855, Z: 0.585293},
	{X: -0.940195, Y: 0.304490, Z: -0.152706},
	{X: 0.602019, Y: -0.491878, Z: -0.628991},
	{X: -0.096835, Y: -0.494354, Z: -0.863850},
	{X: 0.026630, Y: -0.323659, Z: -0.945799},
	{X: 0.019208, Y: 0.909386, Z: 0.415510},
	{X: 0.854440, Y: 0.491730, Z: 0.167731},
	{X: -0.418835, Y: 0.866521, Z: -0.271512},
	{X: 0.465024, Y: 0.409667, Z: 0.784809},
	{X: -0.674391, Y: -0.691087, Z: -0.259992},
	{X: 0.303858, Y: -0.869270, Z: -0.389922},
	{X: 0.991333, Y: 0.090061, Z: -0.095640},
	{X: -0.275924, Y: -0.369550, Z: 0.887298},
	{X: 0.426545, Y: -0.465962, Z: 0.775202},
	{X: -0.482741, Y: -0.873278, Z: -0.065920},
	{X: 0.063616, Y: 0.932012, Z: -0.356800},
	{X: 0.624786, Y: -0.061315, Z: 0.778385},
	{X: -0.530300, Y: 0.416850, Z: 0.738253},
	{X: 0.312144, Y: -0.757028, Z: -0.573999},
	{X: 0.399288, Y: -0.587091, Z: -0.704197},
	{X: -0.132698, Y: 0.482877, Z: 0.865576},
	{X: 0.950966, Y: 0.306530, Z: 0.041268},
	{X: -0.015923, Y: -0.144300, Z: 0.989406},
	{X: -0.407522, Y: -0.854193, Z: 0.322925},
	{X: -0.932398, Y: 0.220464, Z: 0.286408},
	{X: 0.477509, Y: 0.876580, Z: 0.059936},
	{X: 0.337133, Y: 0.932606, Z: -0.128796},
	{X: -0.638117, Y: 0.199338, Z: 0.743687},
	{X: -0.677454, Y: 0.445349, Z: 0.585423},
	{X: -0.446715, Y: 0.889059, Z: -0.100099},
	{X: -0.410024, Y: 0.909168, Z: 0.072759},
	{X: 0.708462, Y: 0.702103, Z: -0.071641},
	{X: -0.048801, Y: -0.903683, Z: -0.425411},
	{X: -0.513681, Y: -0.646901, Z: 0.563606},
	{X: -0.080022, Y: 0.000676, Z: -0.996793},
	{X: 0.066966, Y: -0.991150, Z: -0.114615},
	{X: -0.245220, Y: 0.639318, Z: -0.728793},
	{X: 0.250978, Y: 0.855979, Z: 0.452006},
	{X: -0.123547, Y: 0.982443, Z: -0.139791},
	{X: -0.794825, Y: 0.030254, Z: -0.606084},
	{X: -0.772905, Y: 0.547941, Z: 0.319967},
	{X: 0.916347, Y: 0.369614, Z: -0.153928},
	{X: -0.388203, Y: 0.105395, Z: 0.915527},
	{X: -0.700468, Y: -0.709334, Z: 0.078677},
	{X: -0.816193, Y: 0.390455, Z: 0.425880},
	{X: -0.043007, Y: 0.769222, Z: -0.637533},
	{X: 0.911444, Y: 0.113150, Z: 0.395560},
	{X: 0.845801, Y: 0.156091, Z: -0.510153},
	{X: 0.829801, Y: -0.029340, Z: 0.557287},
	{X: 0.259529, Y: 0.416263, Z: 0.871418},
	{X: 0.231128, Y: -0.845982, Z: 0.480515},
	{X: -0.626203, Y: -0.646168, Z: 0.436277},
	{X: -0.197047, Y: -0.065791, Z: 0.978184},
	{X: -0.255692, Y: -0.637488, Z: -0.726794},
	{X: 0.530662, Y: -0.844385, Z: -0.073567},
	{X: -0.779887, Y: 0.617067, Z: -0.104899},
	{X: 0.739908, Y: 0.113984, Z: 0.662982},
	{X: -0.218801, Y: 0.930194, Z: -0.294729},
	{X: -0.374231, Y: 0.818666, Z: 0.435589},
	{X: -0.720250, Y: -0.028285, Z: 0.693137},
	{X: 0.075389, Y: 0.415049, Z: 0.906670},
	{X: -0.539724, Y: -0.106620, Z: 0.835063},
	{X: -0.452612, Y: -0.754669, Z: -0.474991},
	{X: 0.682822, Y: 0.581234, Z: -0.442629},
	{X: 0.002435, Y: -0.618462, Z: -0.785811},
	{X: -0.397631, Y: 0.110766, Z: -0.910835},
	{X: 0.133935, Y: -0.985438, Z: 0.104754},
	{X: 0.759098, Y: -0.608004, Z: 0.232595},
	{X: -0.825239, Y: -0.256087, Z: 0.503388},
	{X: 0.101693, Y: -0.565568, Z: 0.818408},
	{X: 0.386377, Y: 0.793546, Z: -0.470104},
	{X: -0.520516, Y: -0.840690, Z: 0.149346},
	{X: -0.784549, Y: -0.479672, Z: 0.392935},
	{X: -0.325322, Y: -0.927581, Z: -0.183735},
	{X: -0.069294, Y: -0.428541, Z: 0.900861},
	{X: 0.993354, Y: -0.115023, Z: -0.004288},
	{X: -0.123896, Y: -0.700568, Z: 0.702747},
	{X: -0.438031, Y: -0.120880, Z: -0.890795},
	{X: 0.063314, Y: 0.813233, Z: 0.578484},
	{X: 0.322045, Y: 0.889086, Z: -0.325289},
	{X: -0.133521, Y: 0.875063, Z: -0.465228},
	{X: 0.637155, Y: 0.564814, Z: 0.524422},
	{X: 0.260092, Y: -0.669353, Z: 0.695930},
	{X: 0.953195, Y: 0.040485, Z: -0.299634},
	{X: -0.840665, Y: -0.076509, Z: 0.536124},
	{X: -0.971350, Y: 0.202093, Z: 0.125047},
	{X: -0.804307, Y: -0.396312, Z: -0.442749},
	{X: -0.936746, Y: 0.069572, Z: 0.343027},
	{X: 0.426545, Y: -0.465962, Z: 0.775202},
	{X: 0.794542, Y: -0.227450, Z: 0.563000},
	{X: -0.892172, Y: 0.091169, Z: -0.442399},
	{X: -0.312654, Y: 0.541264, Z: 0.780564},
	{X: 0.590603, Y: -0.735618, Z: -0.331743},
	{X: -0.098040, Y: -0.986713, Z: 0.129558},
	{X: 0.569646, Y: 0.283078, Z: -0.771603},
	{X: 0.431051, Y: -0.407385, Z: -0.805129},
	{X: -0.162087, Y: -0.938749, Z: -0.304104},
	{X: 0.241533, Y: -0.359509, Z: 0.901341},
	{X: -0.576191, Y: 0.614939, Z: 0.538380},
	{X: -0.025110, Y: 0.085740, Z: 0.996001},
	{X: -0.352693, Y: -0.198168, Z: 0.914515},
	{X: -0.604577, Y: 0.700711, Z: 0.378802},
	{X: 0.465024, Y: 0.409667, Z: 0.784809},
	{X: -0.254684, Y: -0.030474, Z: -0.966544},
	{X: -0.604789, Y: 0.791809, Z: 0.085259},
	{X: -0.705147, Y: -0.399298, Z: 0.585943},
	{X: 0.185691, Y: 0.017236, Z: -0.982457},
	{X: 0.044588, Y: 0.973094, Z: 0.226052},
	{X: -0.405463, Y: 0.642367, Z: 0.650357},
	{X: -0.563959, Y: 0.599136, Z: -0.568319},
	{X: 0.367162, Y: -0.072253, Z: -0.927347},
	{X: 0.960429, Y: -0.213570, Z: -0.178783},
	{X: -0.192629, Y: 0.906005, Z: 0.376893},
	{X: -0.199718, Y: -0.359865, Z: -0.911378},
	{X: 0.485072, Y: 0.121233, Z: -0.866030},
	{X: 0.467163, Y: -0.874294, Z: 0.131792},
	{X: -0.638953, Y: -0.716603, Z: 0.279677},
	{X: -0.622710, Y: 0.047813, Z: -0.780990},
	{X: 0.828724, Y: -0.054433, Z: -0.557004},
	{X: 0.130241, Y: 0.991080, Z: 0.028245},
	{X: 0.310995, Y: -0.950076, Z: -0.025242},
	{X: 0.818118, Y: 0.275336, Z: 0.504850},
	{X: 0.676328, Y: 0.387023, Z: 0.626733},
	{X: -0.100433, Y: 0.495114, Z: -0.863004},
	{X: -0.949609, Y: -0.240681, Z: -0.200786},
	{X: -0.102610, Y: 0.261831, Z: -0.959644},
	{X: -0.845732, Y: -0.493136, Z: 0.203850},
	{X: 0.672617, Y: -0.738838, Z: 0.041290},
	{X: 0.380465, Y: 0.875938, Z: 0.296613},
	{X: -0.811223, Y: 0.262027, Z: -0.522742},
	{X: -0.074423, Y: -0.775670, Z: -0.626736},
	{X: -0.286499, Y: 0.755850, Z: -0.588735},
	{X: 0.291182, Y: -0.276189, Z: -0.915933},
	{X: -0.638117, Y: 0.199338, Z: 0.743687},
	{X: 0.439922, Y: -0.864433, Z: -0.243359},
	{X: 0.177649, Y: 0.206919, Z: 0.962094},
	{X: 0.277107, Y: 0.948521, Z: 0.153361},
	{X: 0.507629, Y: 0.661918, Z: -0.551523},
	{X: -0.503110, Y: -0.579308, Z: -0.641313},
	{X: 0.600522, Y: 0.736495, Z: -0.311364},
	{X: -0.691096, Y: -0.715301, Z: -0.103592},
	{X: -0.041083, Y: -0.858497, Z: 0.511171},
	{X: 0.207773, Y: -0.480062, Z: -0.852274},
	{X: 0.795719, Y: 0.464614, Z: 0.388543},
	{X: -0.100433, Y: 0.495114, Z: -0.863004},
	{X: 0.703249, Y: 0.065157, Z: -0.707951},
	{X: -0.324171, Y: -0.941112, Z: 0.096024},
	{X: -0.134933, Y: -0.940212, Z: 0.312722},
	{X: -0.438240, Y: 0.752088, Z: -0.492249},
	{X: 0.964762, Y: -0.198855, Z: 0.172311},
	{X: -0.831799, Y: 0.196807, Z: 0.519015},
	{X: -0.508008, Y: 0.819902, Z: 0.263986},
	{X: 0.471075, Y: -0.001146, Z: 0.882092},
	{X: 0.919512, Y: 0.246162, Z: -0.306435},
	{X: -0.960050, Y: 0.279828, Z: -0.001187},
	{X: 0.110232, Y: -0.847535, Z: -0.519165},
	{X: 0.208229, Y: 0.697360, Z: 0.685806},
	{X: -0.199680, Y: -0.560621, Z: 0.803637},
	{X: 0.170135, Y: -0.679985, Z: -0.713214},
	{X: 0.758371, Y: -0.494907, Z: 0.424195},
	{X: 0.077734, Y: -0.755978, Z: 0.649965},
	{X: 0.612831, Y: -0.672475, Z: 0.414987},
	{X: 0.142776, Y: 0.836698, Z: -0.528726},
	{X: -0.765185, Y: 0.635778, Z: 0.101382},
	{X: 0.669873, Y: -0.419737, Z: 0.612447},
	{X: 0.593549, Y: 0.194879, Z: 0.780847},
	{X: 0.646930, Y: 0.752173, Z: 0.125368},
	{X: 0.837721, Y: 0.545266, Z: -0.030127},
	{X: 0.541505, Y: 0.768070, Z: 0.341820},
	{X: 0.760679, Y: -0.365715, Z: -0.536301},
	{X: 0.381516, Y: 0.640377, Z: 0.666605},
	{X: 0.565794, Y: -0.072415, Z: -0.821361},
	{X: -0.466072, Y: -0.401588, Z: 0.788356},
	{X: 0.987146, Y: 0.096290, Z: 0.127560},
	{X: 0.509709, Y: -0.688886, Z: -0.515396},
	{X: -0.135132, Y: -0.988046, Z: -0.074192},
	{X: 0.600499, Y: 0.476471, Z: -0.642166},
	{X: -0.732326, Y: -0.275320, Z: -0.622815},
	{X: -0.881141, Y: -0.470404, Z: 0.048078},
	{X: 0.051548, Y: 0.601042, Z: 0.797553},
	{X: 0.402027, Y: -0.763183, Z: 0.505891},
	{X: 0.404233, Y: -0.208288, Z: 0.890624},
	{X: -0.311793, Y: 0.343843, Z: 0.885752},
	{X: 0.098132, Y: -0.937014, Z: 0.335223},
	{X: 0.537158, Y: 0.830585, Z: -0.146936},
	{X: 0.725277, Y: 0.298172, Z: -0.620538},
	{X: -0.882025, Y: 0.342976, Z: -0.323110},
	{X: -0.668829, Y: 0.424296, Z: -0.610443},
	{X: -0.408835, Y: -0.476442, Z: -0.778368},
	{X: 0.809472, Y: 0.397249, Z: -0.432375},
	{X: -0.909184, Y: -0.205938, Z: -0.361903},
	{X: 0.866930, Y: -0.347934, Z: -0.356895},
	{X: 0.911660, Y: -0.141281, Z: -0.385897},
	{X: -0.431404, Y: -0.844074, Z: -0.318480},
	{X: -0.950593, Y: -0.073496, Z: 0.301614},
	{X: -0.719716, Y: 0.626915, Z: -0.298305},
	{X: -0.779887, Y: 0.617067, Z: -0.104899},
	{X: -0.475899, Y: -0.542630, Z: 0.692151},
	{X: 0.081952, Y: -0.157248, Z: -0.984153},
	{X: 0.923990, Y: -0.381662, Z: -0.024025},
	{X: -0.957998, Y: 0.120979, Z: -0.260008},
	{X: 0.306601, Y: 0.227975, Z: -0.924134},
	{X: -0.141244, Y: 0.989182, Z: 0.039601},
	{X: 0.077097, Y: 0.186288, Z: -0.979466},
	{X: -0.630407, Y: -0.259801, Z: 0.731499},
	{X: 0.718150, Y: 0.637408, Z: 0.279233},
	{X: 0.340946, Y: 0.110494, Z: 0.933567},
	{X: -0.396671, Y: 0.503020, Z: -0.767869},
	{X: 0.636943, Y: -0.245005, Z: 0.730942},
	{X: -0.849605, Y: -0.518660, Z: -0.095724},
	{X: -0.388203, Y: 0.105395, Z: 0.915527},
	{X: -0.280671, Y: -0.776541, Z: -0.564099},
	{X: -0.601680, Y: 0.215451, Z: -0.769131},
	{X: -0.660112, Y: -0.632371, Z: -0.405412},
	{X: 0.921096, Y: 0.284072, Z: 0.266242},
	{X: 0.074850, Y: -0.300846, Z: 0.950731},
	{X: 0.943952, Y: -0.067062, Z: 0.323198},
	{X: -0.917838, Y: -0.254589, Z: 0.304561},
	{X: 0.889843, Y: -0.409008, Z: 0.202219},
	{X: -0.565849, Y: 0.753721, Z: -0.334246},
	{X: 0.791460, Y: 0.555918, Z: -0.254060},
	{X: 0.261936, Y: 0.703590, Z: -0.660568},
	{X: -0.234406, Y: 0.952084, Z: 0.196444},
	{X: 0.111205, Y: 0.979492, Z: -0.168014},
	{X: -0.869844, Y: -0.109095, Z: -0.481113},
	{X: -0.337728, Y: -0.269701, Z: -0.901777},
	{X: 0.366793, Y: 0.408875, Z: -0.835634},
	{X: -0.098749, Y: 0.261316, Z: 0.960189},
	{X: -0.272379, Y: -0.847100, Z: 0.456324},
	{X: -0.319506, Y: 0.287444, Z: -0.902935},
	{X: 0.873383, Y: -0.294109, Z: 0.388203},
	{X: -0.088950, Y: 0.710450, Z: 0.698104},
	{X: 0.551238, Y: -0.786552, Z: 0.278340},
	{X: 0.724436, Y: -0.663575, Z: -0.186712},
	{X: 0.529741, Y: -0.606539, Z: 0.592861},
	{X: -0.949743, Y: -0.282514, Z: 0.134809},
	{X: 0.155047, Y: 0.419442, Z: -0.894443},
	{X: -0.562653, Y: -0.329139, Z: -0.758346},
	{X: 0.816407, Y: -0.576953, Z: 0.024576},
	{X: 0.178550, Y: -0.950242, Z: -0.255266},
	{X: 0.479571, Y: 0.706691, Z: 0.520192},
	{X: 0.391687, Y: 0.559884, Z: -0.730145},
	{X: 0.724872, Y: -0.205570, Z: -0.657496},
	{X: -0.663196, Y: -0.517587, Z: -0.540624},
	{X: -0.660054, Y: -0.122486, Z: -0.741165},
	{X: -0.531989, Y: 0.374711, Z: -0.759328},
	{X: 0.194979, Y: -0.059120, Z: 0.979024},
}
